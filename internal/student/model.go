package student

import "encoding/json"

// person is the identity part of a student: no rules apply to it on its own.
type person struct {
	age  int
	name string
}

// Student is an enrolled student. Every exported mutation re-checks the
// field rule before committing, so a Student value is always valid.
type Student struct {
	id             string
	person         person
	enrollmentCode string
	className      string
}

// New validates age, enrollment code and class name in that order and
// returns the first rule violation as a *ValidationError.
func New(age int, name, enrollmentCode, className string) (*Student, error) {
	if err := validateAge(age); err != nil {
		return nil, err
	}
	if err := validateEnrollmentCode(enrollmentCode); err != nil {
		return nil, err
	}
	if err := validateClassName(className); err != nil {
		return nil, err
	}

	return &Student{
		person:         person{age: age, name: name},
		enrollmentCode: enrollmentCode,
		className:      className,
	}, nil
}

// ID is empty until the student is enrolled in a Registry.
func (s *Student) ID() string             { return s.id }
func (s *Student) Age() int               { return s.person.age }
func (s *Student) Name() string           { return s.person.name }
func (s *Student) EnrollmentCode() string { return s.enrollmentCode }
func (s *Student) ClassName() string      { return s.className }

func (s *Student) SetAge(age int) error {
	if err := validateAge(age); err != nil {
		return err
	}
	s.person.age = age
	return nil
}

func (s *Student) SetName(name string) {
	s.person.name = name
}

func (s *Student) SetEnrollmentCode(code string) error {
	if err := validateEnrollmentCode(code); err != nil {
		return err
	}
	s.enrollmentCode = code
	return nil
}

func (s *Student) SetClassName(className string) error {
	if err := validateClassName(className); err != nil {
		return err
	}
	s.className = className
	return nil
}

type studentJSON struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	EnrollmentCode string `json:"enrollmentCode"`
	ClassName      string `json:"className"`
}

func (s *Student) MarshalJSON() ([]byte, error) {
	return json.Marshal(studentJSON{
		ID:             s.id,
		Name:           s.person.name,
		Age:            s.person.age,
		EnrollmentCode: s.enrollmentCode,
		ClassName:      s.className,
	})
}
