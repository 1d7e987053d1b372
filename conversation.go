package pagechat

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation about the current page.
type Turn struct {
	Role    Role   `json:"role"`
	Message string `json:"message"`
}
