package extract

import "github.com/haldris/fieldread/engine"

// Character sets for profile whitelists. A whitelist contains exactly the
// characters a field type can legitimately display.
const (
	lettersUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lettersLower = "abcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"

	whitelistText    = lettersUpper + lettersLower + digits + "%().-"
	whitelistDigits  = digits
	whitelistLetters = lettersUpper + lettersLower
	whitelistFailure = lettersUpper + lettersLower + digits + "%(). "
)

// profile builds a recognition profile with the fixed engine mode and
// language shared by every field type.
func profile(seg engine.SegMode, whitelist string) engine.Config {
	return engine.Config{
		Mode:      engine.ModeDefault,
		Seg:       seg,
		Whitelist: whitelist,
		Language:  "eng",
	}
}

var (
	// Free text: one uniform-block profile, no retry.
	textProfiles = []engine.Config{
		profile(engine.SegUniformBlock, whitelistText),
	}

	// Plain numbers: one single-line profile, no retry.
	numberProfiles = []engine.Config{
		profile(engine.SegSingleLine, whitelistDigits),
	}

	// Turn counters are small and segmentation-sensitive; narrowest
	// assumption first.
	turnProfiles = []engine.Config{
		profile(engine.SegSingleWord, whitelistDigits),
		profile(engine.SegSingleLine, whitelistDigits),
		profile(engine.SegUniformBlock, whitelistDigits),
	}

	// Mood labels are short alphabetic words.
	moodProfiles = []engine.Config{
		profile(engine.SegSingleWord, whitelistLetters),
		profile(engine.SegSingleLine, whitelistLetters),
		profile(engine.SegUniformBlock, whitelistLetters),
	}

	// Failure-rate crops are noisy compound fields; uniform-block mode is
	// the most reliable there, so it leads the ladder.
	failureProfiles = []engine.Config{
		profile(engine.SegUniformBlock, whitelistFailure),
		profile(engine.SegSingleLine, whitelistFailure),
		profile(engine.SegSingleWord, whitelistFailure),
		profile(engine.SegRawLine, whitelistFailure),
	}

	// Token-level failure extraction uses the ladder's leading profile.
	failureTokenProfile = profile(engine.SegUniformBlock, whitelistFailure)
)
