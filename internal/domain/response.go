package domain

// Card is the simple display card shown next to the spoken text.
type Card struct {
	Title   string
	Content string
}

// Response is the normalized outbound payload.
type Response struct {
	SpeechText       string
	RepromptText     string
	Card             *Card
	ShouldEndSession bool
}

// ResponseBuilder assembles a Response step by step. The session stays open
// unless WithShouldEndSession(true) is called.
type ResponseBuilder struct {
	resp Response
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.SpeechText = text
	return b
}

func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.RepromptText = text
	return b
}

func (b *ResponseBuilder) WithSimpleCard(title, content string) *ResponseBuilder {
	b.resp.Card = &Card{Title: title, Content: content}
	return b
}

func (b *ResponseBuilder) WithShouldEndSession(end bool) *ResponseBuilder {
	b.resp.ShouldEndSession = end
	return b
}

// Build returns a copy, so the builder can keep being used.
func (b *ResponseBuilder) Build() *Response {
	resp := b.resp
	if b.resp.Card != nil {
		card := *b.resp.Card
		resp.Card = &card
	}
	return &resp
}
