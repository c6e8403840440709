package domain

// DegreeType is a closed set of experience levels attached to a user.
type DegreeType string

const (
	DegreeNewbie DegreeType = "newbie"
	DegreeExpert DegreeType = "expert"
)

// DegreeTypes lists every valid DegreeType in declaration order.
var DegreeTypes = []DegreeType{DegreeNewbie, DegreeExpert}

func (d DegreeType) String() string { return string(d) }

// Valid reports whether d is one of DegreeTypes.
func (d DegreeType) Valid() bool {
	switch d {
	case DegreeNewbie, DegreeExpert:
		return true
	default:
		return false
	}
}

// ParseDegreeType matches s exactly against the known degree types.
func ParseDegreeType(s string) (DegreeType, bool) {
	d := DegreeType(s)
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// Degree is a single qualification held by a user.
type Degree struct {
	ID         int64      `json:"id"`
	CreatedAt  Datetime   `json:"created_at"`
	TypeDegree DegreeType `json:"type_degree"`
}

// User is a directory entry. Degree is never nil on decoded users.
type User struct {
	ID     int64    `json:"id"`
	Role   string   `json:"role"`
	Name   string   `json:"name"`
	Degree []Degree `json:"degree"`
}

// Clone returns a copy of u that shares no memory with it.
func (u User) Clone() User {
	cp := u
	cp.Degree = make([]Degree, len(u.Degree))
	copy(cp.Degree, u.Degree)
	return cp
}

// Account is the view of a user without degrees, as returned by a rename.
type Account struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}

// Account drops the degree list from u.
func (u User) Account() Account {
	return Account{ID: u.ID, Role: u.Role, Name: u.Name}
}

// Trade is a single order record. Currency and Price carry constraints
// that are checked after decoding.
type Trade struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Currency string  `json:"currency" validate:"max=5"`
	Side     string  `json:"side"`
	Price    float64 `json:"price" validate:"gte=0"`
	Amount   float64 `json:"amount"`
}
