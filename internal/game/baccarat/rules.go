package baccarat

// PlayerStood marks the absence of a player third card in BankerDraws.
const PlayerStood = -1

// IsNatural reports a two-card total of 8 or 9.
func IsNatural(total int) bool {
	return total == 8 || total == 9
}

// PlayerDraws reports whether the player takes a third card.
func PlayerDraws(playerTotal int) bool {
	return playerTotal >= 0 && playerTotal <= 5
}

// BankerDraws implements the banker column of the tableau.
// playerThird is the point value of the player's third card, or PlayerStood.
func BankerDraws(bankerTotal int, playerThird int) bool {
	if playerThird == PlayerStood {
		return bankerTotal <= 5
	}
	switch bankerTotal {
	case 0, 1, 2:
		return true
	case 3:
		return playerThird != 8
	case 4:
		return playerThird >= 2 && playerThird <= 7
	case 5:
		return playerThird >= 4 && playerThird <= 7
	case 6:
		return playerThird == 6 || playerThird == 7
	default: // 7, 8, 9
		return false
	}
}
