package user

// Profile is the externally exposed shape of a User. Absent values are
// serialized as null.
type Profile struct {
	ID       int64       `json:"id"`
	Name     *string     `json:"name"`
	Username *string     `json:"username"`
	Email    *string     `json:"email"`
	Address  *AddressDTO `json:"address"`
	Phone    *string     `json:"phone"`
	Website  *string     `json:"website"`
	Company  *CompanyDTO `json:"company"`
}

type AddressDTO struct {
	Street  *string `json:"street"`
	Suite   *string `json:"suite"`
	City    *string `json:"city"`
	Zipcode *string `json:"zipcode"`
	Geo     *GeoDTO `json:"geo"`
}

type GeoDTO struct {
	Lat *string `json:"lat"`
	Lng *string `json:"lng"`
}

type CompanyDTO struct {
	Name        *string `json:"name"`
	CatchPhrase *string `json:"catchPhrase"`
	BS          *string `json:"bs"`
}
