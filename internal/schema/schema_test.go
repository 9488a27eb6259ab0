package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVerse = Object(
	F("number", Integer().Min(1)),
	F("text", String()),
)

var testChapter = Object(
	F("book", Object(
		F("name", String()),
		F("version", String()),
	)),
	F("verses", Array(testVerse)),
	F("comment", String().Optional()),
)

type verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type chapter struct {
	Book struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"book"`
	Verses  []verse `json:"verses"`
	Comment string  `json:"comment,omitempty"`
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Map()
}

func TestValidate_Accepts(t *testing.T) {
	raw := []byte(`{"book":{"name":"Gênesis","version":"nvi","extra":1},"verses":[{"number":1,"text":"No princípio"}]}`)

	assert.NoError(t, Validate(testChapter, raw))
}

func TestValidate_ReportsNestedPaths(t *testing.T) {
	raw := []byte(`{"book":{"name":7},"verses":[{"number":1,"text":"a"},{"number":"2"},{"number":0,"text":"c"}]}`)

	errs := fieldErrors(t, Validate(testChapter, raw))

	assert.Equal(t, "must be a string", errs["book.name"])
	assert.Equal(t, "is required", errs["book.version"])
	assert.Equal(t, "must be an integer", errs["verses[1].number"])
	assert.Equal(t, "is required", errs["verses[1].text"])
	assert.Equal(t, "must be at least 1", errs["verses[2].number"])
	assert.NotContains(t, errs, "comment")
}

func TestValidate_FieldOrderIsStable(t *testing.T) {
	s := Object(F("a", String()), F("b", String()), F("c", String()))

	err := Validate(s, []byte(`{}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)
	assert.Equal(t, "a", verr.Fields[0].Path)
	assert.Equal(t, "b", verr.Fields[1].Path)
	assert.Equal(t, "c", verr.Fields[2].Path)
}

func TestValidate_RootMismatch(t *testing.T) {
	errs := fieldErrors(t, Validate(Array(testVerse), []byte(`{"number":1}`)))
	assert.Equal(t, "must be an array", errs["value"])

	errs = fieldErrors(t, Validate(testVerse, []byte(`not json`)))
	assert.Equal(t, "must be valid JSON", errs["value"])
}

func TestValidate_NullAndOptional(t *testing.T) {
	s := Object(
		F("lastLogin", String().Optional()),
		F("comment", String().Nullable()),
	)

	assert.NoError(t, Validate(s, []byte(`{"comment":null}`)))

	errs := fieldErrors(t, Validate(s, []byte(`{"lastLogin":null,"comment":"x"}`)))
	assert.Equal(t, "must not be null", errs["lastLogin"])
}

func TestValidate_Formats(t *testing.T) {
	s := Object(
		F("email", String().Email()),
		F("password", String().Min(6)),
		F("imageUrl", String().URL()),
		F("range", Enum("day", "week", "month")),
	)

	errs := fieldErrors(t, Validate(s, []byte(`{"email":"nope","password":"12345","imageUrl":"/x.png","range":"year"}`)))

	assert.Equal(t, "must be a valid email", errs["email"])
	assert.Equal(t, "must be at least 6 characters long", errs["password"])
	assert.Equal(t, "must be a valid url", errs["imageUrl"])
	assert.Contains(t, errs["range"], "must be one of")

	assert.NoError(t, Validate(s, []byte(`{"email":"a@b.co","password":"çççççç","imageUrl":"https://x.test/a.png","range":"week"}`)))
}

func TestExtend(t *testing.T) {
	base := Object(F("name", String()), F("chapters", Integer()))
	extended := base.Extend(F("version", String()), F("chapters", Number()))

	assert.Len(t, base.Fields(), 2)
	assert.Len(t, extended.Fields(), 3)
	assert.NoError(t, Validate(extended, []byte(`{"name":"Jo","chapters":21.5,"version":"acf"}`)))

	errs := fieldErrors(t, Validate(base, []byte(`{"name":"Jo","chapters":21.5}`)))
	assert.Equal(t, "must be an integer", errs["chapters"])
}

func TestDecode(t *testing.T) {
	raw := []byte(`{"book":{"name":"João","version":"acf"},"verses":[{"number":1,"text":"No princípio era o Verbo"}]}`)

	c, err := Decode[chapter](testChapter, raw)
	require.NoError(t, err)
	assert.Equal(t, "João", c.Book.Name)
	require.Len(t, c.Verses, 1)
	assert.Equal(t, 1, c.Verses[0].Number)

	_, err = Decode[chapter](testChapter, []byte(`{"book":{}}`))
	assert.Error(t, err)
}

func TestDecode_IsIdempotent(t *testing.T) {
	raw := []byte(`{"book":{"name":"Salmos","version":"nvi"},"verses":[{"number":1,"text":"Bem-aventurado"},{"number":2,"text":"Antes"}]}`)

	first, err := Decode[chapter](testChapter, raw)
	require.NoError(t, err)

	again, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := Decode[chapter](testChapter, again)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheck(t *testing.T) {
	input := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: "reader@example.com", Password: "abc"}

	s := Object(F("email", String().Email()), F("password", String().Min(6)))

	errs := fieldErrors(t, Check(s, input))
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "password")
}

func TestDescribe(t *testing.T) {
	d := Array(testVerse).Describe()

	assert.Equal(t, "array", d["type"])
	items, ok := d["items"].(map[string]any)
	require.True(t, ok)
	fields, ok := items["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "number")
}
