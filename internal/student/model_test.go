package student_test

import (
	"encoding/json"
	"errors"
	"testing"

	"intraeng/internal/student"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validCode  = "1234567890"
	validClass = "Engenharia Civil"
)

func TestNew_Age(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{"below minimum", 15, true},
		{"minimum", 16, false},
		{"middle", 30, false},
		{"maximum", 60, false},
		{"above maximum", 61, true},
		{"negative", -1, true},
		{"zero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := student.New(tt.age, "Ana", validCode, validClass)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
				assert.ErrorIs(t, err, student.ErrInvalidAge)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.age, s.Age())
		})
	}
}

func TestNew_EnrollmentCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"ten digits", "1234567890", false},
		{"all zeros", "0000000000", false},
		{"nine digits", "123456789", true},
		{"eleven digits", "12345678901", true},
		{"empty", "", true},
		{"letter inside", "12345a7890", true},
		{"leading plus", "+123456789", true},
		{"leading minus", "-123456789", true},
		{"inner space", "12345 6789", true},
		{"trailing space", "123456789 ", true},
		{"decimal point", "12345.6789", true},
		{"non-ascii digits", "١٢٣٤٥٦٧٨٩٠", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := student.New(20, "Ana", tt.code, validClass)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
				assert.ErrorIs(t, err, student.ErrInvalidEnrollmentCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, s.EnrollmentCode())
		})
	}
}

func TestNew_ClassName(t *testing.T) {
	tests := []struct {
		name      string
		className string
		wantErr   bool
	}{
		{"prefix with suffix", "Engenharia X", false},
		{"prefix only", "Engenharia", false},
		{"accented suffix", "Engenharia Elétrica", false},
		{"prefix not at start", "X Engenharia", true},
		{"lowercase", "engenharia", true},
		{"leading space", " Engenharia Civil", true},
		{"empty", "", true},
		{"course prefix", "Curso Engenharia", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := student.New(20, "Ana", validCode, tt.className)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
				assert.ErrorIs(t, err, student.ErrInvalidClassName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.className, s.ClassName())
		})
	}
}

func TestNew_CheckOrder(t *testing.T) {
	// every field is invalid, age is reported first
	_, err := student.New(10, "Ana", "abc", "Medicina")
	assert.ErrorIs(t, err, student.ErrInvalidAge)
	assert.NotErrorIs(t, err, student.ErrInvalidEnrollmentCode)

	// code is checked before class name
	_, err = student.New(20, "Ana", "abc", "Medicina")
	assert.ErrorIs(t, err, student.ErrInvalidEnrollmentCode)
	assert.NotErrorIs(t, err, student.ErrInvalidClassName)
}

func TestNew_Scenario(t *testing.T) {
	carlos, err := student.New(17, "Carlos Silva", "1234567890", "Engenharia Civil")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Silva", carlos.Name())
	assert.Equal(t, "Engenharia Civil", carlos.ClassName())

	// same code as Carlos, rejected on age before anything else
	maria, err := student.New(15, "Maria Oliveira", "1234567890", "Engenharia Elétrica")
	assert.Nil(t, maria)
	assert.ErrorIs(t, err, student.ErrInvalidAge)
}

func TestValidationError(t *testing.T) {
	_, err := student.New(15, "Ana", validCode, validClass)
	require.Error(t, err)

	var verr *student.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, student.FieldAge, verr.Field)
	assert.Equal(t, 15, verr.Value)
	assert.Contains(t, verr.Error(), "between 16 and 60")
	assert.True(t, student.IsValidation(err))
	assert.False(t, student.IsValidation(student.ErrStudentNotFound))

	_, err = student.New(20, "Ana", "12", validClass)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, student.FieldEnrollmentCode, verr.Field)
	assert.Contains(t, verr.Error(), "10 digits")

	_, err = student.New(20, "Ana", validCode, "Direito")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, student.FieldClassName, verr.Field)
	assert.Contains(t, verr.Error(), `"Engenharia"`)
}

func TestGetters_Idempotent(t *testing.T) {
	s, err := student.New(22, "Ana Souza", validCode, validClass)
	require.NoError(t, err)

	assert.Equal(t, s.Age(), s.Age())
	assert.Equal(t, s.Name(), s.Name())
	assert.Equal(t, s.EnrollmentCode(), s.EnrollmentCode())
	assert.Equal(t, s.ClassName(), s.ClassName())
}

func TestSetters(t *testing.T) {
	s, err := student.New(22, "Ana Souza", validCode, validClass)
	require.NoError(t, err)

	t.Run("valid values commit", func(t *testing.T) {
		require.NoError(t, s.SetAge(60))
		require.NoError(t, s.SetEnrollmentCode("0987654321"))
		require.NoError(t, s.SetClassName("Engenharia Mecânica"))
		s.SetName("Ana S.")

		assert.Equal(t, 60, s.Age())
		assert.Equal(t, "0987654321", s.EnrollmentCode())
		assert.Equal(t, "Engenharia Mecânica", s.ClassName())
		assert.Equal(t, "Ana S.", s.Name())
	})

	t.Run("rejected age keeps previous", func(t *testing.T) {
		before := s.Age()
		err := s.SetAge(61)
		assert.ErrorIs(t, err, student.ErrInvalidAge)
		assert.Equal(t, before, s.Age())
	})

	t.Run("rejected code keeps previous", func(t *testing.T) {
		before := s.EnrollmentCode()
		err := s.SetEnrollmentCode("12345")
		assert.ErrorIs(t, err, student.ErrInvalidEnrollmentCode)
		assert.Equal(t, before, s.EnrollmentCode())
	})

	t.Run("rejected class keeps previous", func(t *testing.T) {
		before := s.ClassName()
		err := s.SetClassName("engenharia civil")
		assert.ErrorIs(t, err, student.ErrInvalidClassName)
		assert.Equal(t, before, s.ClassName())
	})

	t.Run("name accepts anything", func(t *testing.T) {
		s.SetName("")
		assert.Equal(t, "", s.Name())
	})
}

func TestStudent_MarshalJSON(t *testing.T) {
	s, err := student.New(30, "Rui", validCode, validClass)
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Rui", got["name"])
	assert.Equal(t, float64(30), got["age"])
	assert.Equal(t, validCode, got["enrollmentCode"])
	assert.Equal(t, validClass, got["className"])
	assert.NotContains(t, got, "id")
}
