package game

// score marks guess against secret. Both are WordLength lowercase a-z.
func score(secret, guess string, mode Scoring) [WordLength]Mark {
	if mode == ScoringNaive {
		return scoreNaive(secret, guess)
	}
	return scoreStandard(secret, guess)
}

// scoreStandard is the two-pass letter-frequency algorithm.
//
// Pass 1 marks exact matches and counts the secret letters left unmatched.
// Pass 2 walks the remaining guess letters left to right and marks a letter
// Present only while the unmatched pool still holds one.
func scoreStandard(secret, guess string) [WordLength]Mark {
	var marks [WordLength]Mark
	var pool [26]int

	for i := range WordLength {
		if guess[i] == secret[i] {
			marks[i] = MarkCorrect
		} else {
			pool[secret[i]-'a']++
		}
	}

	for i := range WordLength {
		if marks[i] == MarkCorrect {
			continue
		}
		j := guess[i] - 'a'
		if pool[j] > 0 {
			marks[i] = MarkPresent
			pool[j]--
		}
	}
	return marks
}

// scoreNaive compares each position on its own, with no letter budget.
func scoreNaive(secret, guess string) [WordLength]Mark {
	var marks [WordLength]Mark
	var in LetterSet
	for i := range WordLength {
		in = in.Add(rune(secret[i]))
	}

	for i := range WordLength {
		switch {
		case guess[i] == secret[i]:
			marks[i] = MarkCorrect
		case in.Has(rune(guess[i])):
			marks[i] = MarkPresent
		}
	}
	return marks
}

// isWord reports whether s is exactly WordLength lowercase ASCII letters.
func isWord(s string) bool {
	return len(s) == WordLength && isAlpha(s)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
