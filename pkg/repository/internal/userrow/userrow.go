// Package userrow flattens user.User into the single-table column layout
// shared by the SQL repositories.
package userrow

import "github.com/artem13815/userhub/pkg/user"

// Columns lists every column except id, in Args order.
const Columns = "user_name, username, email, phone, website, street, suite, city, zipcode, geo_lat, geo_lng, company_name, company_catch_phrase, company_bs"

// NumColumns is the number of entries in Columns.
const NumColumns = 14

// Row is one users table row.
type Row struct {
	ID                 int64
	Name               *string
	Username           *string
	Email              *string
	Phone              *string
	Website            *string
	Street             *string
	Suite              *string
	City               *string
	Zipcode            *string
	GeoLat             *string
	GeoLng             *string
	CompanyName        *string
	CompanyCatchPhrase *string
	CompanyBS          *string
}

func FromUser(u user.User) Row {
	r := Row{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
	if a := u.Address; a != nil {
		r.Street, r.Suite, r.City, r.Zipcode = a.Street, a.Suite, a.City, a.Zipcode
		if a.Geo != nil {
			r.GeoLat, r.GeoLng = a.Geo.Lat, a.Geo.Lng
		}
	}
	if c := u.Company; c != nil {
		r.CompanyName, r.CompanyCatchPhrase, r.CompanyBS = c.Name, c.CatchPhrase, c.BS
	}
	return r
}

// User rebuilds the entity. An embedded object whose columns are all NULL
// comes back as nil.
func (r Row) User() user.User {
	u := user.User{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		Website:  r.Website,
	}
	geo := &user.Geo{Lat: r.GeoLat, Lng: r.GeoLng}
	if geo.IsZero() {
		geo = nil
	}
	addr := &user.Address{Street: r.Street, Suite: r.Suite, City: r.City, Zipcode: r.Zipcode, Geo: geo}
	if !addr.IsZero() {
		u.Address = addr
	}
	company := &user.Company{Name: r.CompanyName, CatchPhrase: r.CompanyCatchPhrase, BS: r.CompanyBS}
	if !company.IsZero() {
		u.Company = company
	}
	return u
}

// Args returns the column values in Columns order.
func (r Row) Args() []any {
	return []any{
		r.Name, r.Username, r.Email, r.Phone, r.Website,
		r.Street, r.Suite, r.City, r.Zipcode, r.GeoLat, r.GeoLng,
		r.CompanyName, r.CompanyCatchPhrase, r.CompanyBS,
	}
}

// Dest returns scan targets for "id, " + Columns.
func (r *Row) Dest() []any {
	return []any{
		&r.ID,
		&r.Name, &r.Username, &r.Email, &r.Phone, &r.Website,
		&r.Street, &r.Suite, &r.City, &r.Zipcode, &r.GeoLat, &r.GeoLng,
		&r.CompanyName, &r.CompanyCatchPhrase, &r.CompanyBS,
	}
}
