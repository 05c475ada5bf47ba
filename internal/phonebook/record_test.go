package phonebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStableKeyOrder(t *testing.T) {
	r := Record{
		LastName:      "Иванов",
		FirstName:     "Иван",
		MiddleName:    "Иванович",
		Organization:  "Рога и Копыта",
		WorkPhone:     "111",
		PersonalPhone: "222",
	}

	want := `{"last_name":"Иванов","first_name":"Иван","middle_name":"Иванович","organization":"Рога и Копыта","work_phone":"111","personal_phone":"222"}`
	assert.Equal(t, want, r.Render())
}

func TestRenderKeepsSpecialCharacters(t *testing.T) {
	r := Record{Organization: "Smith & Wesson <export>"}
	out := r.Render()
	assert.Contains(t, out, "Smith & Wesson <export>")
	assert.NotContains(t, out, `\u`)
}

func TestRenderEmptyRecord(t *testing.T) {
	out := Record{}.Render()
	assert.Equal(t, `{"last_name":"","first_name":"","middle_name":"","organization":"","work_phone":"","personal_phone":""}`, out)
}
