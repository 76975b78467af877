package arith

// Kind identifies one of the four operations.
type Kind int

// Operation kinds in the order they are offered to the user.
const (
	KindAddition Kind = iota
	KindSubtraction
	KindMultiplication
	KindDivision
)

// Operation binds a command name to its arithmetic function.
type Operation struct {
	Kind  Kind
	Name  string
	Label string
	apply func(a, b float64) (float64, error)
}

// Apply runs the operation on the two operands.
func (o Operation) Apply(a, b float64) (float64, error) {
	return o.apply(a, b)
}

func infallible(fn func(a, b float64) float64) func(a, b float64) (float64, error) {
	return func(a, b float64) (float64, error) {
		return fn(a, b), nil
	}
}

var operations = []Operation{
	{Kind: KindAddition, Name: "addition", Label: "The Sum is: ", apply: infallible(Add)},
	{Kind: KindSubtraction, Name: "subtraction", Label: "The Difference is: ", apply: infallible(Subtract)},
	{Kind: KindMultiplication, Name: "multiplication", Label: "The Product is: ", apply: infallible(Multiply)},
	{Kind: KindDivision, Name: "division", Label: "The Division is: ", apply: Divide},
}

// Operations returns all operations in menu order.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	copy(ops, operations)

	return ops
}

// Lookup returns the operation whose name equals token.
// The token must already be normalized to lower case.
func Lookup(token string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == token {
			return op, true
		}
	}

	return Operation{}, false
}

// LegacyDivision returns a division operation that keeps the zero-divisor
// check but computes the product. It backs the compat.legacyDivision setting.
func LegacyDivision() Operation {
	op, _ := Lookup("division")
	op.apply = func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return Multiply(a, b), nil
	}

	return op
}

// String returns the command name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(operations) {
		return "unknown"
	}

	return operations[k].Name
}
