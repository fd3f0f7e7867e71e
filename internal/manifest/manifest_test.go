package manifest

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/noshapp/nosh/internal/errors"
)

func TestParse(t *testing.T) {
	input := `# runtime dependencies
streamlit>=1.32
folium>=0.15,<1.0
geopy[timezone]==2.4.1

matplotlib   # charts
requests`

	file, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(file.Requirements) != 5 {
		t.Fatalf("got %d requirements, want 5", len(file.Requirements))
	}

	tests := []struct {
		idx     int
		name    string
		extras  []string
		specs   []Specifier
		line    int
	}{
		{0, "streamlit", nil, []Specifier{{OpGe, "1.32"}}, 2},
		{1, "folium", nil, []Specifier{{OpGe, "0.15"}, {OpLt, "1.0"}}, 3},
		{2, "geopy", []string{"timezone"}, []Specifier{{OpEq, "2.4.1"}}, 4},
		{3, "matplotlib", nil, nil, 6},
		{4, "requests", nil, nil, 7},
	}

	for _, tt := range tests {
		req := file.Requirements[tt.idx]
		if req.Name != tt.name {
			t.Errorf("req[%d].Name = %q, want %q", tt.idx, req.Name, tt.name)
		}
		if req.Line != tt.line {
			t.Errorf("req[%d].Line = %d, want %d", tt.idx, req.Line, tt.line)
		}
		if len(req.Extras) != len(tt.extras) {
			t.Errorf("req[%d].Extras = %v, want %v", tt.idx, req.Extras, tt.extras)
		}
		if len(req.Specifiers) != len(tt.specs) {
			t.Fatalf("req[%d].Specifiers = %v, want %v", tt.idx, req.Specifiers, tt.specs)
		}
		for i, s := range tt.specs {
			if req.Specifiers[i] != s {
				t.Errorf("req[%d].Specifiers[%d] = %v, want %v", tt.idx, i, req.Specifiers[i], s)
			}
		}
	}
}

func TestParseEmptyAndCommentsOnly(t *testing.T) {
	file, err := Parse(strings.NewReader("# nothing here\n\n   \n# really\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Requirements) != 0 {
		t.Errorf("got %d requirements, want 0", len(file.Requirements))
	}
}

func TestParseCRLF(t *testing.T) {
	file, err := Parse(strings.NewReader("streamlit>=1.32\r\nfolium\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(file.Requirements) != 2 {
		t.Fatalf("got %d requirements, want 2", len(file.Requirements))
	}
	if file.Requirements[0].Raw != "streamlit>=1.32" {
		t.Errorf("Raw = %q, carriage return not stripped", file.Requirements[0].Raw)
	}
}

func TestParseWhitespaceAroundOps(t *testing.T) {
	file, err := Parse(strings.NewReader("geopy >= 2.4, < 3.0\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	req := file.Requirements[0]
	want := []Specifier{{OpGe, "2.4"}, {OpLt, "3.0"}}
	if len(req.Specifiers) != 2 || req.Specifiers[0] != want[0] || req.Specifiers[1] != want[1] {
		t.Errorf("Specifiers = %v, want %v", req.Specifiers, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trailing comma", "folium>=0.15,\n"},
		{"bare operator", "streamlit>=\n"},
		{"leading dash", "-badname\n"},
		{"trailing dot name", "badname.\n"},
		{"unterminated extras", "geopy[timezone\n"},
		{"empty extra", "geopy[]\n"},
		{"garbage after name", "geopy @ something\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if !stderrors.Is(err, errors.ErrManifest) {
				t.Fatalf("Parse(%q) error = %v, want ErrManifest kind", tt.input, err)
			}
		})
	}
}

func TestParseErrorCarriesLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("streamlit>=1.32\nfolium>=\n"))
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Errorf("error %q does not carry line number 2", err.Error())
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# full line", ""},
		{"streamlit>=1.32  # charts", "streamlit>=1.32  "},
		{"name#notacomment", "name#notacomment"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := stripComment(tt.in); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Streamlit", "streamlit"},
		{"streamlit_extras", "streamlit-extras"},
		{"foo..bar", "foo-bar"},
		{"A__B--C..D", "a-b-c-d"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"streamlit", true},
		{"a", true},
		{"streamlit-folium", true},
		{"st_extras.card", true},
		{"-bad", false},
		{"bad-", false},
		{".bad", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRequirementString(t *testing.T) {
	req := Requirement{
		Name:       "geopy",
		Extras:     []string{"timezone"},
		Specifiers: []Specifier{{OpGe, "2.4"}, {OpLt, "3.0"}},
	}
	want := "geopy[timezone]>=2.4,<3.0"
	if got := req.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRequirementMatches(t *testing.T) {
	tests := []struct {
		name    string
		req     string
		version string
		want    bool
	}{
		{"ge match", "streamlit>=1.32", "1.33.0", true},
		{"ge two-segment version", "streamlit>=1.32", "1.32", true},
		{"ge below", "streamlit>=1.32", "1.31.1", false},
		{"range inside", "folium>=0.15,<1.0", "0.16.0", true},
		{"range above", "folium>=0.15,<1.0", "1.0.0", false},
		{"eq exact", "geopy==2.4.1", "2.4.1", true},
		{"eq mismatch", "geopy==2.4.1", "2.4.2", false},
		{"eq two-segment pin is exact", "streamlit==1.32", "1.32.5", false},
		{"eq two-segment pin matches zero patch", "streamlit==1.32", "1.32.0", true},
		{"eq two-segment pin matches itself", "streamlit==1.32", "1.32", true},
		{"ne", "geopy!=2.4.1", "2.4.2", true},
		{"compatible patch", "geopy~=2.4.1", "2.4.9", true},
		{"compatible minor excluded", "geopy~=2.4.1", "2.5.0", false},
		{"compatible two segments", "geopy~=2.4", "2.9.0", true},
		{"compatible major excluded", "geopy~=2.4", "3.0.0", false},
		{"wildcard pin", "geopy==2.4.*", "2.4.7", true},
		{"wildcard pin mismatch", "geopy==2.4.*", "2.5.0", false},
		{"no specifiers", "matplotlib", "0.0.1", true},
		{"arbitrary eq", "geopy===2.4.1", "2.4.1", true},
		{"arbitrary eq mismatch", "geopy===2.4.1", "2.4.1.post1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse(strings.NewReader(tt.req))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.req, err)
			}
			got, err := file.Requirements[0].Matches(tt.version)
			if err != nil {
				t.Fatalf("Matches(%q) error = %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestLint(t *testing.T) {
	input := `streamlit>=1.32
Streamlit==1.33
geopy==2.4.1,==2.4.2
folium`

	file, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	findings := Lint(file)
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2: %v", len(findings), findings)
	}

	if findings[0].Line != 2 || !strings.Contains(findings[0].Message, "duplicate") {
		t.Errorf("findings[0] = %v, want duplicate on line 2", findings[0])
	}
	if findings[1].Line != 3 || !strings.Contains(findings[1].Message, "conflicting pins") {
		t.Errorf("findings[1] = %v, want conflicting pins on line 3", findings[1])
	}
}

func TestLintClean(t *testing.T) {
	file, err := Parse(strings.NewReader("streamlit>=1.32\nfolium>=0.15,<1.0\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if findings := Lint(file); len(findings) != 0 {
		t.Errorf("got findings %v for a clean manifest", findings)
	}
}
