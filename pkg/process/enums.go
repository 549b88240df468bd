package process

// Enum is implemented by every enum token. EnumType is the token's type name
// ("Scope") and EnumName the member as spelled in the DSL ("global_").
type Enum interface {
	EnumType() string
	EnumName() string
}

// Barrier tokens.
type Barrier string

const BarrierNormSack Barrier = "normSack"

// Cardinality tokens.
type Cardinality string

const (
	CardinalityList   Cardinality = "list_"
	CardinalitySet    Cardinality = "set_"
	CardinalitySingle Cardinality = "single"
)

// Column tokens.
type Column string

const (
	ColumnKeys   Column = "keys"
	ColumnValues Column = "values"
)

// Direction tokens.
type Direction string

const (
	DirectionBoth Direction = "BOTH"
	DirectionIn   Direction = "IN"
	DirectionOut  Direction = "OUT"
)

// Operator tokens used by sack and reduction steps.
type Operator string

const (
	OperatorSum     Operator = "sum"
	OperatorMinus   Operator = "minus"
	OperatorMult    Operator = "mult"
	OperatorDiv     Operator = "div"
	OperatorMin     Operator = "min"
	OperatorMax     Operator = "max"
	OperatorAssign  Operator = "assign"
	OperatorAnd     Operator = "and_"
	OperatorOr      Operator = "or_"
	OperatorAddAll  Operator = "addAll"
	OperatorSumLong Operator = "sumLong"
)

// Order tokens.
type Order string

const (
	OrderIncr      Order = "incr"
	OrderDecr      Order = "decr"
	OrderKeyIncr   Order = "keyIncr"
	OrderValueIncr Order = "valueIncr"
	OrderKeyDecr   Order = "keyDecr"
	OrderValueDecr Order = "valueDecr"
	OrderShuffle   Order = "shuffle"
)

// Pick tokens.
type Pick string

const (
	PickAny  Pick = "any"
	PickNone Pick = "none"
)

// Pop tokens.
type Pop string

const (
	PopFirst Pop = "first"
	PopLast  Pop = "last"
	PopAll   Pop = "all_"
)

// Scope tokens.
type Scope string

const (
	ScopeGlobal Scope = "global_"
	ScopeLocal  Scope = "local"
)

// T tokens address element structure.
type T string

const (
	TID    T = "id"
	TKey   T = "key"
	TLabel T = "label"
	TValue T = "value"
)

func (e Barrier) EnumType() string     { return "Barrier" }
func (e Barrier) EnumName() string     { return string(e) }
func (e Cardinality) EnumType() string { return "Cardinality" }
func (e Cardinality) EnumName() string { return string(e) }
func (e Column) EnumType() string      { return "Column" }
func (e Column) EnumName() string      { return string(e) }
func (e Direction) EnumType() string   { return "Direction" }
func (e Direction) EnumName() string   { return string(e) }
func (e Operator) EnumType() string    { return "Operator" }
func (e Operator) EnumName() string    { return string(e) }
func (e Order) EnumType() string       { return "Order" }
func (e Order) EnumName() string       { return string(e) }
func (e Pick) EnumType() string        { return "Pick" }
func (e Pick) EnumName() string        { return string(e) }
func (e Pop) EnumType() string         { return "Pop" }
func (e Pop) EnumName() string         { return string(e) }
func (e Scope) EnumType() string       { return "Scope" }
func (e Scope) EnumName() string       { return string(e) }
func (e T) EnumType() string           { return "T" }
func (e T) EnumName() string           { return string(e) }

var enumMembers = map[string][]Enum{
	"Barrier":     {BarrierNormSack},
	"Cardinality": {CardinalityList, CardinalitySet, CardinalitySingle},
	"Column":      {ColumnKeys, ColumnValues},
	"Direction":   {DirectionBoth, DirectionIn, DirectionOut},
	"Operator": {
		OperatorSum, OperatorMinus, OperatorMult, OperatorDiv, OperatorMin, OperatorMax,
		OperatorAssign, OperatorAnd, OperatorOr, OperatorAddAll, OperatorSumLong,
	},
	"Order": {
		OrderIncr, OrderDecr, OrderKeyIncr, OrderValueIncr, OrderKeyDecr, OrderValueDecr, OrderShuffle,
	},
	"Pick":  {PickAny, PickNone},
	"Pop":   {PopFirst, PopLast, PopAll},
	"Scope": {ScopeGlobal, ScopeLocal},
	"T":     {TID, TKey, TLabel, TValue},
}

// EnumTypes returns the names of all enum types, in no particular order.
func EnumTypes() []string {
	out := make([]string, 0, len(enumMembers))
	for name := range enumMembers {
		out = append(out, name)
	}
	return out
}

// ParseEnum returns the member of enumType whose DSL name is name.
func ParseEnum(enumType, name string) (Enum, bool) {
	for _, m := range enumMembers[enumType] {
		if m.EnumName() == name {
			return m, true
		}
	}
	return nil, false
}
