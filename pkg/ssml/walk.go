package ssml

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(e *Element) error

// Walk performs a pre-order traversal starting at root, visiting every
// element exactly once. If walkFunc returns a non-nil error the walk stops
// immediately and returns that error.
func Walk(root *Element, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}
