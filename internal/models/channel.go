package models

// FrameKind tags the direction of a channel frame.
type FrameKind string

const (
	FrameUtterance FrameKind = "utterance" // transcribed patient speech, inbound
	FrameReply     FrameKind = "reply"     // agent text for synthesis, outbound
)

// Frame is the unit exchanged with the speech channel. The channel converts
// audio to and from frames; the core only ever sees text.
type Frame struct {
	Kind FrameKind `json:"kind"`
	Text string    `json:"text"`
}

// UtteranceFrame wraps transcribed text in an inbound frame.
func UtteranceFrame(text string) Frame {
	return Frame{Kind: FrameUtterance, Text: text}
}

// ReplyFrame wraps agent text in an outbound frame.
func ReplyFrame(text string) Frame {
	return Frame{Kind: FrameReply, Text: text}
}
