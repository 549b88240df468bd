package process

// Lambda is a script function shipped to the server as text.
//
// Arity is the declared parameter count. It is only transmitted for host
// script languages (see the codec's lambda options); for other languages
// the server infers it and the codec sends -1.
type Lambda struct {
	Script   string
	Language string // empty selects the codec's default language
	Arity    int
}

// NewLambda returns a lambda in the codec's default language.
func NewLambda(script string, arity int) Lambda {
	return Lambda{Script: script, Arity: arity}
}

// NewLambdaIn returns a lambda in an explicit language.
func NewLambdaIn(language, script string, arity int) Lambda {
	return Lambda{Script: script, Language: language, Arity: arity}
}
