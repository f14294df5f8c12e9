// Package apperrors holds the error values shared by the game, the word
// collaborators and the UI.
package apperrors

import "errors"

// Error codes.
const (
	CodeUnknown               = 1000
	CodeInvalidLength         = 2001
	CodeInvalidLetters        = 2002
	CodeDuplicateGuess        = 2003
	CodeSessionTerminated     = 2004
	CodeInvalidSecret         = 2005
	CodeWordNotValid          = 3001
	CodeValidationUnavailable = 3002
	CodeWordSourceUnavailable = 3003
)

// GameError is a user-facing error with a stable code.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors
var (
	ErrInvalidLength         = &GameError{Code: CodeInvalidLength, Message: "Guess must be 5 letters long."}
	ErrInvalidLetters        = &GameError{Code: CodeInvalidLetters, Message: "Guess may only contain the letters a-z."}
	ErrDuplicateGuess        = &GameError{Code: CodeDuplicateGuess, Message: "You already guessed that word."}
	ErrSessionTerminated     = &GameError{Code: CodeSessionTerminated, Message: "The game is over."}
	ErrInvalidSecret         = &GameError{Code: CodeInvalidSecret, Message: "Secret must be a 5-letter word."}
	ErrWordNotValid          = &GameError{Code: CodeWordNotValid, Message: "Invalid word. Please enter a valid word."}
	ErrValidationUnavailable = &GameError{Code: CodeValidationUnavailable, Message: "Could not validate the word. Please try again."}
	ErrWordSourceUnavailable = &GameError{Code: CodeWordSourceUnavailable, Message: "Word source unavailable."}
)

// Code returns the code of the first GameError in err's chain, or
// CodeUnknown.
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return CodeUnknown
}

// Message returns the user-facing message for err. Wrapped GameErrors keep
// their own message so causes such as transport errors stay out of the UI.
func Message(err error) string {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Message
	}
	return err.Error()
}
