package gemini

// ReplyText exposes replyText for testing.
var ReplyText = replyText
