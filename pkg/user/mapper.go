package user

// ToProfile converts a persisted user into its transfer shape.
func ToProfile(u User) Profile {
	p := Profile{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
	if u.Address != nil {
		p.Address = &AddressDTO{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
		}
		if u.Address.Geo != nil {
			p.Address.Geo = &GeoDTO{Lat: u.Address.Geo.Lat, Lng: u.Address.Geo.Lng}
		}
	}
	if u.Company != nil {
		p.Company = &CompanyDTO{
			Name:        u.Company.Name,
			CatchPhrase: u.Company.CatchPhrase,
			BS:          u.Company.BS,
		}
	}
	return p
}

// ToUser converts a transfer profile into an entity. The ID is copied as is;
// callers that create records ignore it.
func ToUser(p Profile) User {
	u := User{
		ID:       p.ID,
		Name:     p.Name,
		Username: p.Username,
		Email:    p.Email,
		Phone:    p.Phone,
		Website:  p.Website,
	}
	if p.Address != nil {
		u.Address = &Address{
			Street:  p.Address.Street,
			Suite:   p.Address.Suite,
			City:    p.Address.City,
			Zipcode: p.Address.Zipcode,
		}
		if p.Address.Geo != nil {
			u.Address.Geo = &Geo{Lat: p.Address.Geo.Lat, Lng: p.Address.Geo.Lng}
		}
	}
	if p.Company != nil {
		u.Company = &Company{
			Name:        p.Company.Name,
			CatchPhrase: p.Company.CatchPhrase,
			BS:          p.Company.BS,
		}
	}
	return u
}

// ApplyUpdate overwrites existing with incoming and returns the result.
//
// Top-level scalars are always replaced, so a nil incoming field clears the
// stored one. Address and Company are only touched when present in incoming:
// a missing embedded object is created, then overwritten field by field.
// Geo inside Address follows the same rule. An embedded object can therefore
// be set or changed through an update but never cleared.
func ApplyUpdate(existing User, incoming Profile) User {
	out := existing
	out.Name = incoming.Name
	out.Username = incoming.Username
	out.Email = incoming.Email
	out.Phone = incoming.Phone
	out.Website = incoming.Website

	if in := incoming.Address; in != nil {
		addr := Address{}
		if existing.Address != nil {
			addr = *existing.Address
		}
		addr.Street = in.Street
		addr.Suite = in.Suite
		addr.City = in.City
		addr.Zipcode = in.Zipcode
		if in.Geo != nil {
			addr.Geo = &Geo{Lat: in.Geo.Lat, Lng: in.Geo.Lng}
		} else if addr.Geo != nil {
			g := *addr.Geo
			addr.Geo = &g
		}
		out.Address = &addr
	}

	if in := incoming.Company; in != nil {
		out.Company = &Company{
			Name:        in.Name,
			CatchPhrase: in.CatchPhrase,
			BS:          in.BS,
		}
	}
	return out
}
