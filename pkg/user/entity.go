package user

// User is the persisted directory profile. Every scalar is nullable; the
// embedded Address and Company are nil when none of their columns are set.
type User struct {
	ID       int64
	Name     *string
	Username *string
	Email    *string
	Phone    *string
	Website  *string
	Address  *Address
	Company  *Company
}

// Address is stored inline with its owning user.
type Address struct {
	Street  *string
	Suite   *string
	City    *string
	Zipcode *string
	Geo     *Geo
}

// Geo holds coordinates as decimal strings, e.g. "40.7128".
type Geo struct {
	Lat *string
	Lng *string
}

type Company struct {
	Name        *string
	CatchPhrase *string
	BS          *string
}

// IsZero reports whether no Geo column is set.
func (g *Geo) IsZero() bool {
	return g == nil || (g.Lat == nil && g.Lng == nil)
}

// IsZero reports whether no Address column, including Geo, is set.
func (a *Address) IsZero() bool {
	return a == nil || (a.Street == nil && a.Suite == nil && a.City == nil && a.Zipcode == nil && a.Geo.IsZero())
}

func (c *Company) IsZero() bool {
	return c == nil || (c.Name == nil && c.CatchPhrase == nil && c.BS == nil)
}
