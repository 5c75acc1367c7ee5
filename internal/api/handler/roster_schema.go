package handler

import "github.com/schooldesk/school-api/internal/core/ports"

type studentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Age         int    `json:"age" validate:"required,gt=0"`
	Class       string `json:"class" validate:"required"`
	Height      string `json:"height" validate:"required"`
	Weight      string `json:"weight" validate:"required"`
	Avatar      string `json:"avatar" validate:"required"`
	FeesStatus  string `json:"feesStatus"`
	Nationality string `json:"nationality" validate:"required"`
}

func (r studentRequest) toInput() ports.StudentInput {
	return ports.StudentInput{
		Name:        r.Name,
		Age:         r.Age,
		Class:       r.Class,
		Height:      r.Height,
		Weight:      r.Weight,
		Avatar:      r.Avatar,
		FeesStatus:  r.FeesStatus,
		Nationality: r.Nationality,
	}
}

type staffRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Age         int      `json:"age" validate:"required,gt=0"`
	TypeOfStaff string   `json:"typeOfStaff" validate:"required"`
	Office      string   `json:"office" validate:"required"`
	Height      string   `json:"height" validate:"required"`
	Weight      string   `json:"weight" validate:"required"`
	Avatar      string   `json:"avatar" validate:"required"`
	Salary      *float64 `json:"salary" validate:"required,gte=0"`
	Nationality string   `json:"nationality" validate:"required"`
}

func (r staffRequest) toInput() ports.StaffInput {
	in := ports.StaffInput{
		Name:        r.Name,
		Age:         r.Age,
		TypeOfStaff: r.TypeOfStaff,
		Office:      r.Office,
		Height:      r.Height,
		Weight:      r.Weight,
		Avatar:      r.Avatar,
		Nationality: r.Nationality,
	}
	if r.Salary != nil {
		in.Salary = *r.Salary
	}
	return in
}
