// Package vm holds the interpreter contract the adapter is driven by, and
// a Starlark-scripted story machine that exercises the full asynchronous
// input protocol. The adapter itself never imports this package; the
// interpreter stays an opaque caller of the adapter's operations.
package vm

// Machine is the interpreter the session owner drives. Start runs the
// machine until it has issued its first input request (or finished).
// Resume re-enters the machine after input of the given length has been
// copied into the machine's buffer; the session owner calls it when the
// adapter emits a line-input completion.
type Machine interface {
	Start() (err error)
	Resume(length uint32) (err error)
}
