// Package pagechat answers questions about a single web page.
// It fetches the page, extracts clean text and structural metadata from its
// HTML into a size-bounded PageContent, and uses that content as grounding
// context for a conversational question-answering loop backed by an LLM.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package pagechat
