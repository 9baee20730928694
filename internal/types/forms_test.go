package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApplicationValues() FieldValues {
	return FieldValues{
		"firstName":  "Meron",
		"lastName":   "Alemu",
		"email":      "meron@example.com",
		"phone":      "+251 911 123 456",
		"city":       "Addis Ababa",
		"experience": "5",
		"skills":     "Go, PostgreSQL",
		"interest":   "I like the team",
	}
}

func TestFieldValues_WithIsPureMerge(t *testing.T) {
	base := FieldValues{"firstName": "Abel", "city": "Adama"}

	next := base.With("firstName", "Hana")

	assert.Equal(t, "Hana", next.Get("firstName"))
	assert.Equal(t, "Adama", next.Get("city"))
	assert.Equal(t, "Abel", base.Get("firstName"), "original record must not change")
}

func TestFieldValues_WithSameValueChangesNothing(t *testing.T) {
	base := FieldValues{"firstName": "Abel", "city": "Adama", "email": "a@example.com"}

	next := base
	for i := 0; i < 3; i++ {
		next = next.With("city", base.Get("city"))
	}

	assert.Equal(t, base, next)
}

func TestApplicationForm_RoundTripsValues(t *testing.T) {
	in := validApplicationValues().With("linkedin", "  https://linkedin.com/in/meron  ")

	form := ApplicationFromValues(in)
	out := form.Values()

	assert.Equal(t, "https://linkedin.com/in/meron", out["linkedin"])
	assert.Len(t, out, len(ApplicationFieldNames))
	for _, name := range ApplicationFieldNames {
		_, ok := out[name]
		assert.True(t, ok, "missing field %s", name)
	}
}

func TestApplicationForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		values    FieldValues
		wantField string
	}{
		{name: "valid", values: validApplicationValues()},
		{name: "missing first name", values: validApplicationValues().With("firstName", ""), wantField: "firstName"},
		{name: "bad email", values: validApplicationValues().With("email", "not-an-email"), wantField: "email"},
		{name: "experience too high", values: validApplicationValues().With("experience", "51"), wantField: "experience"},
		{name: "experience negative", values: validApplicationValues().With("experience", "-1"), wantField: "experience"},
		{name: "experience not a number", values: validApplicationValues().With("experience", "five"), wantField: "experience"},
		{name: "bad linkedin", values: validApplicationValues().With("linkedin", "linkedin"), wantField: "linkedin"},
		{name: "bad start date", values: validApplicationValues().With("startDate", "next week"), wantField: "startDate"},
		{name: "good start date", values: validApplicationValues().With("startDate", "2026-11-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := ApplicationFromValues(tt.values)
			err := form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FieldErrors(err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	fields := FieldErrors(assert.AnError)
	assert.Equal(t, assert.AnError.Error(), fields["_form"])
	assert.Nil(t, FieldErrors(nil))
}

func TestContactMessage_Validate(t *testing.T) {
	msg := ContactFromValues(FieldValues{
		"firstName": "Sara",
		"lastName":  "Bekele",
		"email":     "sara@example.com",
		"subject":   "New website",
		"message":   "We need a new website.",
	})
	assert.NoError(t, msg.Validate())

	msg.Email = ""
	err := msg.Validate()
	require.Error(t, err)
	assert.Equal(t, "This field is required", FieldErrors(err)["email"])
}

func TestCheckAttachment(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	t.Run("pdf accepted", func(t *testing.T) {
		att := &Attachment{Field: FieldResume, Filename: "cv.pdf", Data: pdf}
		msg, ok := CheckAttachment(att, DefaultMaxUploadBytes)
		assert.True(t, ok, msg)
		assert.Equal(t, "application/pdf", att.ContentType)
	})

	t.Run("wrong extension", func(t *testing.T) {
		att := &Attachment{Field: FieldResume, Filename: "cv.exe", Data: pdf}
		_, ok := CheckAttachment(att, DefaultMaxUploadBytes)
		assert.False(t, ok)
	})

	t.Run("text disguised as pdf", func(t *testing.T) {
		att := &Attachment{Field: FieldResume, Filename: "cv.pdf", Data: []byte("just some text")}
		_, ok := CheckAttachment(att, DefaultMaxUploadBytes)
		assert.False(t, ok)
	})

	t.Run("too large", func(t *testing.T) {
		big := append([]byte(nil), pdf...)
		big = append(big, []byte(strings.Repeat("x", 64))...)
		att := &Attachment{Field: FieldResume, Filename: "cv.pdf", Data: big}
		msg, ok := CheckAttachment(att, 32)
		assert.False(t, ok)
		assert.Equal(t, "The file is larger than 1KB", msg)

		att = &Attachment{Field: FieldResume, Filename: "cv.pdf", Data: big}
		msg, _ = CheckAttachment(att, 64)
		assert.Equal(t, "The file is larger than 1KB", msg)
	})

	t.Run("limit shown as configured", func(t *testing.T) {
		data := append(append([]byte(nil), pdf...), make([]byte, 3<<10)...)
		msg, ok := CheckAttachment(&Attachment{Field: FieldResume, Filename: "cv.pdf", Data: data}, 2<<10)
		assert.False(t, ok)
		assert.Equal(t, "The file is larger than 2KB", msg)
	})

	t.Run("empty", func(t *testing.T) {
		att := &Attachment{Field: FieldResume, Filename: "cv.pdf"}
		msg, ok := CheckAttachment(att, DefaultMaxUploadBytes)
		assert.False(t, ok)
		assert.Equal(t, "The file is empty", msg)
	})
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{DefaultMaxUploadBytes, "5MB"},
		{10 << 20, "10MB"},
		{1 << 10, "1KB"},
		{512 << 10, "512KB"},
		{1, "1KB"},
		{1<<20 + 1, "1025KB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.n), "FormatSize(%d)", tt.n)
	}
}
