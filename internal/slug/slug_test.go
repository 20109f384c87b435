package slug

import "testing"

// TestGenerate exercises the slug generator with typical titles, Turkish
// text, special characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Budget Vote 2026",
			want:  "budget-vote-2026",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "mixed case sentence",
			input: "The Quick Brown Fox Jumps Over the Lazy Dog",
			want:  "the-quick-brown-fox-jumps-over-the-lazy-dog",
		},

		// --- Turkish transliteration ---
		{
			name:  "turkish classified title",
			input: "Ğümüş İş İlanı",
			want:  "gumus-is-ilani",
		},
		{
			name:  "dotless i survives",
			input: "Sıcak Haber",
			want:  "sicak-haber",
		},
		{
			name:  "full turkish alphabet coverage",
			input: "Çağrı Şöförü Üzgün",
			want:  "cagri-soforu-uzgun",
		},
		{
			name:  "uppercase dotted I",
			input: "İSTANBUL",
			want:  "istanbul",
		},

		// --- Latin diacritics ---
		{
			name:  "french accents stripped",
			input: "Café Résumé Noël",
			want:  "cafe-resume-noel",
		},
		{
			name:  "german sharp s",
			input: "Straße News",
			want:  "strasse-news",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Hello, World! How's it going?",
			want:  "hello-world-hows-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Rock & Roll @ the Arena",
			want:  "rock-roll-the-arena",
		},
		{
			name:  "hash and dollar",
			input: "Issue #42 costs $100",
			want:  "issue-42-costs-100",
		},

		// --- Edge cases ---
		{
			name:  "leading and trailing spaces",
			input: "  padded title  ",
			want:  "padded-title",
		},
		{
			name:  "consecutive spaces collapse",
			input: "too   many    spaces",
			want:  "too-many-spaces",
		},
		{
			name:  "existing hyphens preserved",
			input: "pre-existing-hyphens",
			want:  "pre-existing-hyphens",
		},
		{
			name:  "no leading or trailing hyphen",
			input: "- trimmed -",
			want:  "trimmed",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
