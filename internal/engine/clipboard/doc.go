// Package clipboard provides the editor's clipboard stack: an observable
// last-in-first-out store of text snippets produced by copy and cut.
//
// Push, a successful Pop, and Clear notify every registered Observer
// synchronously before returning. Peek is read-only and never notifies.
// Pop and Peek on an empty stack report ok == false instead of failing.
//
//	stack := clipboard.NewStack()
//	stack.AddObserver(statusLine)
//	stack.Push("hello")
//	if text, ok := stack.Peek(); ok {
//	    // paste text
//	}
package clipboard
