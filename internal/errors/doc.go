// Package errors provides structured errors for the twibbon CLI.
//
// Each error carries a stable code from the registry, a category, an
// optional longer detail and a suggestion on how to fix it. Errors wrap
// their cause so errors.Is and errors.As keep working:
//
//	return errors.New("E100").WithDetail(path).Wrap(err)
//
// Format renders the error as a block for terminal output.
package errors
