package dto

// ChatRequest is the web widget payload for one customer message.
type ChatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Message   string `json:"message"`
	Name      string `json:"name,omitempty"`
}

// DocumentRef points the widget at a deliverable asset such as the menu PDF.
type DocumentRef struct {
	Name    string `json:"name"`
	Caption string `json:"caption,omitempty"`
}

// OptionResponse is a quick-reply button rendered under a message.
type OptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChatReply is one bot message in transition order.
type ChatReply struct {
	Text     string           `json:"text,omitempty"`
	Document *DocumentRef     `json:"document,omitempty"`
	Options  []OptionResponse `json:"options,omitempty"`
}

// ChatResponse carries the bot's answer to one inbound message. Response
// joins the reply texts for widgets that render a single bubble; Replies
// keeps the individual messages, with documents, in transition order.
type ChatResponse struct {
	Response string           `json:"response"`
	Options  []OptionResponse `json:"options,omitempty"`
	Replies  []ChatReply      `json:"replies"`
}
