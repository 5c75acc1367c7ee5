package domain

import "time"

// InstitutionPlaceholder is the unselected value of the institution dropdown.
const InstitutionPlaceholder = "Select your institution"

// School is the authenticated tenant. Students and staff are embedded in it.
type School struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	InstitutionLevel string    `json:"institutionLevel"`
	Country          string    `json:"country"`
	Address          string    `json:"address"`
	PhoneNumber      string    `json:"phoneNumber"`
	Currency         string    `json:"currency"`
	BackdropImage    string    `json:"backdropImage"`
	AvatarImage      string    `json:"avatarImage"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Student is a sub-record owned by exactly one school.
type Student struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Age         int       `json:"age" bson:"age"`
	Class       string    `json:"class" bson:"class"`
	Height      string    `json:"height" bson:"height"`
	Weight      string    `json:"weight" bson:"weight"`
	Avatar      string    `json:"avatar" bson:"avatar"`
	FeesStatus  string    `json:"feesStatus,omitempty" bson:"fees_status,omitempty"`
	Nationality string    `json:"nationality" bson:"nationality"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Staff is a sub-record owned by exactly one school.
type Staff struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Age         int       `json:"age" bson:"age"`
	TypeOfStaff string    `json:"typeOfStaff" bson:"type_of_staff"`
	Office      string    `json:"office" bson:"office"`
	Height      string    `json:"height" bson:"height"`
	Weight      string    `json:"weight" bson:"weight"`
	Avatar      string    `json:"avatar" bson:"avatar"`
	Salary      float64   `json:"salary" bson:"salary"`
	Nationality string    `json:"nationality" bson:"nationality"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// Identity is the verified subject of a bearer token.
type Identity struct {
	SchoolID string
}
