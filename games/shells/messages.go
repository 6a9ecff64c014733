package shells

import "fmt"

// Player-facing copy. Every message ends with the stats block because that
// block is the save file.

func statsBlock(s GameState) string {
	return "## Your Stats\n" + s.Encode()
}

func welcomeMessage(s GameState) string {
	return `# :woman_elf: Shell Game :woman_elf:

:game_die: **Roll** will roll on your :shell:s, to receive 0x, 1x, 2x, or 3x the amount of :shell:s back.

:abacus: **Set** allows you to set the amount of :shell:s you want to roll.

:beach: **Free** will give you a small number of :shell:s for free. You could even get a :squid:...

:scroll: **Brag** will consume a :squid: to create a record of your winnings. This record will include proof of your achievement in **Sselvish**, a cryptographically secure dialect of Common Elvish.

:wind_blowing_face: **Recall** allows you set your current :shell:s to a past amount of :shell:s, provided you have **proof** of that achievement.
` + statsBlock(s)
}

func rollSuccessMessage(o RollOutcome, s GameState) string {
	return fmt.Sprintf(`# :game_die: Roll the Dice! :game_die:

You rolled on %d :shell:s...

and got a **%dx** multiplier.

You **won** %d :shell:s!
`, o.Bet, o.Multiplier, o.Winnings) + statsBlock(s)
}

func rollFailureMessage(s GameState) string {
	return `# :game_die: Roll the Dice! :game_die:

You can't roll on more :shell:s than you have!
` + statsBlock(s)
}

func setSuccessMessage(bet uint64, s GameState) string {
	return fmt.Sprintf(`# :abacus: Crunching Numbers :abacus:

You set your roll amount to %d.
`, bet) + statsBlock(s)
}

func setOverBankMessage(s GameState) string {
	return `# :abacus: Crunching Numbers :abacus:

You can't try to roll more than you have in your bank!
` + statsBlock(s)
}

func setParseFailureMessage(s GameState) string {
	return `# :abacus: Crunching Numbers :abacus:

You can only set your roll to a number!
` + statsBlock(s)
}

func giftMessage(o GiftOutcome, s GameState) string {
	msg := "# :beach: Tidepools :beach:\n"
	if o.Shells > 0 {
		msg += fmt.Sprintf("You sift through the sands to find %d :shell:s.\n", o.Shells)
	}
	if o.Inspiration > 0 {
		msg += fmt.Sprintf("A glimmer in the sand catches your eye. Upon further inspection, you find %d :squid:s!\n", o.Inspiration)
	}
	return msg + statsBlock(s)
}

func bragSuccessMessage(userID string, o BragOutcome, s GameState) string {
	return fmt.Sprintf(`# :scroll: The Scribe :scroll:

Let it be noted to the public that:
> <@%s> has %d :shell:s!
> <@%s> is %s!
### Proof: *%s*
`, userID, o.Bank, userID, honorific(o.Bank), o.Phrase) + statsBlock(s)
}

func bragFailureMessage(s GameState) string {
	return `# :scroll: The Scribe :scroll:

The Scribe cannot provide proof of your deed without a :squid:!

You can find :squid:s at the **beach**!
` + statsBlock(s)
}

func honorific(bank uint64) string {
	switch {
	case bank == 0:
		return "a :monkey: Blatant Bonobo :monkey:"
	case bank < 10:
		return "a :cucumber: Cool Cucumber :cucumber:"
	case bank < 50:
		return "a :cut_of_meat: Sizzlin' Steak :cut_of_meat:"
	default:
		return "an :elf: Elegant Elf :elf:"
	}
}

func recallSuccessMessage(o RecallOutcome, s GameState) string {
	return fmt.Sprintf(`# :wind_blowing_face: Circle of Recall :wind_blowing_face:

You utter your **Sselvish** proof: *%s*.

Your claim is legitimate! You recall %d :shell:s!
`, o.Phrase, o.Amount) + statsBlock(s)
}

func recallFailureMessage(o RecallOutcome, s GameState) string {
	return fmt.Sprintf(`# :wind_blowing_face: Circle of Recall :wind_blowing_face:

You utter your **Sselvish** proof: *%s*.

Your claim fails! You cannot recall anything.
`, o.Phrase) + statsBlock(s)
}
