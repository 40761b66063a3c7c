package validator

// Builtin rule kinds.
const (
	KindRequired     = "required"
	KindMinLength    = "minLength"
	KindMaxLength    = "maxLength"
	KindLength       = "length"
	KindMin          = "min"
	KindMax          = "max"
	KindPattern      = "pattern"
	KindNoWhitespace = "noWhitespace"
	KindASCII        = "ascii"
	KindEmail        = "email"
	KindURL          = "url"
	KindPhone        = "phone"
	KindIP           = "ip"
	KindAlpha        = "alpha"
	KindAlphanumeric = "alphanumeric"
	KindNumeric      = "numeric"
	KindEnum         = "enum"
	KindNotIn        = "notIn"
	KindUUID         = "uuid"
)

func builtins() map[string]CheckFunc {
	return map[string]CheckFunc{
		KindRequired:     Required,
		KindMinLength:    MinLength,
		KindMaxLength:    MaxLength,
		KindLength:       ExactLength,
		KindMin:          Min,
		KindMax:          Max,
		KindPattern:      Pattern,
		KindNoWhitespace: NoWhitespace,
		KindASCII:        ASCIIOnly,
		KindEmail:        Email,
		KindURL:          URL,
		KindPhone:        Phone,
		KindIP:           IP,
		KindAlpha:        Alpha,
		KindAlphanumeric: Alphanumeric,
		KindNumeric:      NumericString,
		KindEnum:         Enum,
		KindNotIn:        NotIn,
		KindUUID:         UUID,
	}
}
