package extract

import (
	"reflect"
	"testing"

	"github.com/V4MF1R3/TalentScout-hiring-assistant/internal/candidate"
)

func TestApplyEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "plain address",
			input:  "you can reach me at jane.smith@co.com anytime",
			expect: "jane.smith@co.com",
		},
		{
			name:   "address with plus tag",
			input:  "email: jane+jobs@example.org",
			expect: "jane+jobs@example.org",
		},
		{
			name:   "no at-pattern leaves email unset",
			input:  "I prefer phone contact",
			expect: "",
		},
		{
			name:   "first address wins",
			input:  "first@one.com or second@two.com",
			expect: "first@one.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := &candidate.Profile{}
			Apply(profile, tt.input)
			if profile.Email != tt.expect {
				t.Fatalf("expected email %q, got %q", tt.expect, profile.Email)
			}
		})
	}
}

func TestApplyPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "north american format",
			input:  "call me at (555) 123-4567",
			expect: "(555) 123-4567",
		},
		{
			name:   "with country code",
			input:  "my number is +1 555-123-4567",
			expect: "+1 555-123-4567",
		},
		{
			name:   "international digit run",
			input:  "reach me on +4915123456789",
			expect: "+4915123456789",
		},
		{
			name:   "no digits leaves phone unset",
			input:  "email only please",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := &candidate.Profile{}
			Apply(profile, tt.input)
			if profile.Phone != tt.expect {
				t.Fatalf("expected phone %q, got %q", tt.expect, profile.Phone)
			}
		})
	}
}

func TestApplyExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "years of experience",
			input:  "I have 5 years of experience",
			expect: "5 years",
		},
		{
			name:   "yrs abbreviation",
			input:  "7 yrs of exp in backend work",
			expect: "7 years",
		},
		{
			name:   "bare years with plus",
			input:  "10+ years in the field",
			expect: "10 years",
		},
		{
			name:   "experienced for pattern",
			input:  "experienced for 3 years",
			expect: "3 years",
		},
		{
			name:   "no match leaves experience unset",
			input:  "I just graduated",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := &candidate.Profile{}
			Apply(profile, tt.input)
			if profile.Experience != tt.expect {
				t.Fatalf("expected experience %q, got %q", tt.expect, profile.Experience)
			}
		})
	}
}

func TestApplyName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "introduced with my name is",
			input:  "My name is Jane Smith",
			expect: "Jane Smith",
		},
		{
			name:   "introduced with i am",
			input:  "Hello, I am John Doe and I code",
			expect: "John Doe",
		},
		{
			name:   "bare capitalized pair fallback",
			input:  "Jane Smith here",
			expect: "Jane Smith",
		},
		{
			name:   "lowercase text does not match",
			input:  "just call me whenever",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := &candidate.Profile{}
			Apply(profile, tt.input)
			if profile.Name != tt.expect {
				t.Fatalf("expected name %q, got %q", tt.expect, profile.Name)
			}
		})
	}
}

func TestApplyNameIsSetOnce(t *testing.T) {
	t.Parallel()

	profile := &candidate.Profile{}
	Apply(profile, "My name is Jane Smith")
	Apply(profile, "Actually I am John Doe")

	if profile.Name != "Jane Smith" {
		t.Fatalf("expected name to stay %q, got %q", "Jane Smith", profile.Name)
	}
}

func TestApplyPositionStoresWholeUtterance(t *testing.T) {
	t.Parallel()

	profile := &candidate.Profile{}
	Apply(profile, "  I want to work as a backend developer in a product team  ")

	expect := "I want to work as a backend developer in a product team"
	if profile.Position != expect {
		t.Fatalf("expected position %q, got %q", expect, profile.Position)
	}
}

func TestApplyPositionOverwritesPriorValue(t *testing.T) {
	t.Parallel()

	profile := &candidate.Profile{}
	Apply(profile, "I am a junior analyst")
	Apply(profile, "Looking for a senior engineer role")

	if profile.Position != "Looking for a senior engineer role" {
		t.Fatalf("expected latest position to win, got %q", profile.Position)
	}
}

func TestApplyLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "from city",
			input:  "I am from Berlin",
			expect: "Berlin",
		},
		{
			name:   "based in two words",
			input:  "I'm based in New York!",
			expect: "New York",
		},
		{
			name:   "no trigger word",
			input:  "Berlin is a nice city",
			expect: "",
		},
		{
			name:   "digits rejected",
			input:  "I live at 221b Baker",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := &candidate.Profile{}
			Apply(profile, tt.input)
			if profile.Location != tt.expect {
				t.Fatalf("expected location %q, got %q", tt.expect, profile.Location)
			}
		})
	}
}

func TestApplyCombinedUtterance(t *testing.T) {
	t.Parallel()

	profile := &candidate.Profile{}
	Apply(profile, "My name is Jane Smith, jane.smith@co.com, 5 years of experience")

	if profile.Name != "Jane Smith" {
		t.Fatalf("expected name %q, got %q", "Jane Smith", profile.Name)
	}
	if profile.Email != "jane.smith@co.com" {
		t.Fatalf("expected email %q, got %q", "jane.smith@co.com", profile.Email)
	}
	if profile.Experience != "5 years" {
		t.Fatalf("expected experience %q, got %q", "5 years", profile.Experience)
	}
}

func TestApplyIsIdempotentPerField(t *testing.T) {
	t.Parallel()

	profile := &candidate.Profile{}
	input := "My name is Jane Smith, jane.smith@co.com, 5 years of experience"
	Apply(profile, input)
	first := *profile
	Apply(profile, input)

	if !reflect.DeepEqual(*profile, first) {
		t.Fatalf("expected re-running extraction to be a no-op, got %+v vs %+v", *profile, first)
	}
}
