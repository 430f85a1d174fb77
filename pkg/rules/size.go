package rules

// Min fails when the Length of value is below params[0].
func Min(value any, params []string) bool {
	size, ok := Length(value)
	if !ok || len(params) == 0 {
		return true
	}
	limit, ok := number(params[0])
	if !ok {
		return true
	}
	return size < limit
}

// Max fails when the Length of value is above params[0].
func Max(value any, params []string) bool {
	size, ok := Length(value)
	if !ok || len(params) == 0 {
		return true
	}
	limit, ok := number(params[0])
	if !ok {
		return true
	}
	return size > limit
}

// Between fails when the Length of value is outside params[0]..params[1],
// inclusive.
func Between(value any, params []string) bool {
	if len(params) < 2 {
		return true
	}
	return Min(value, params[:1]) || Max(value, params[1:2])
}
