// Package glk bridges an interactive-fiction interpreter's synchronous I/O
// calls to an asynchronous host environment. It provides the window and
// stream object model, output buffering with explicit flush checkpoints,
// capability (gestalt) queries, and the line-input bridge that converts a
// pending input request into a one-shot host callback and re-enters the
// interpreter once text arrives.
//
// A Session is the complete call surface the interpreter uses. The Session
// never blocks: an input request returns immediately, and the host's
// presentation layer later invokes the registered callback, which copies
// the received text into the interpreter-owned buffer and emits a
// completion message for the session owner to consume.
package glk
