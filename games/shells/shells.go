package shells

import (
	"math/rand"
	"time"

	"github.com/bwmarrin/discordgo"

	"shells-go/utils"
)

// Custom IDs for the game's buttons and modals.
const (
	idRoll         = "roll"
	idSetRoll      = "set_roll"
	idFree         = "free"
	idBrag         = "brag"
	idRecall       = "recall"
	idSubmitRecall = "submit_recall"

	fieldRollAmount = "roll_amt"
	fieldClaim      = "claim"
	fieldProof      = "proof"
)

// Handler serves the /shells command and every interaction on its messages.
// It holds no per-player state; everything is rebuilt from the message text
// on each request.
type Handler struct {
	salt string
	gift GiftConfig
	rng  *rand.Rand
}

// New creates the shells handler.
func New(salt string, gift GiftConfig) *Handler {
	return &Handler{
		salt: salt,
		gift: gift,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Invoke answers the slash command with the welcome message and the game's
// action row.
func (h *Handler) Invoke(i *discordgo.Interaction) *discordgo.InteractionResponse {
	state := DecodeState(utils.MessageContent(i))
	return utils.PlainMessage(welcomeMessage(state), actionRow())
}

// React handles the five game buttons. Roll and free settle immediately;
// set and recall open modals; brag is the one public response.
func (h *Handler) React(i *discordgo.Interaction) *discordgo.InteractionResponse {
	state := DecodeState(utils.MessageContent(i))

	switch utils.CustomID(i) {
	case idRoll:
		next, outcome := Roll(state, h.rng)
		if outcome.Rejected {
			return utils.QuietMessage(rollFailureMessage(next), actionRow())
		}
		return utils.QuietMessage(rollSuccessMessage(outcome, next), actionRow())

	case idSetRoll:
		return utils.Modal(idSetRoll, "Set Roll Amount",
			utils.TextField(fieldRollAmount, "Amount"))

	case idFree:
		next, outcome := Gift(state, h.gift, h.rng)
		return utils.QuietMessage(giftMessage(outcome, next), actionRow())

	case idBrag:
		next, outcome := Brag(state, h.salt, utils.UserID(i))
		if !outcome.Granted {
			return utils.QuietMessage(bragFailureMessage(next), actionRow())
		}
		return utils.LoudMessage(bragSuccessMessage(utils.UserID(i), outcome, next))

	case idRecall:
		return utils.Modal(idSubmitRecall, "Circle of Recall",
			utils.TextField(fieldClaim, "claim"),
			utils.TextField(fieldProof, "proof"))

	default:
		return h.Invoke(i)
	}
}

// Submit handles the two modals.
func (h *Handler) Submit(i *discordgo.Interaction) *discordgo.InteractionResponse {
	state := DecodeState(utils.MessageContent(i))
	values := utils.ModalValues(i)

	switch utils.CustomID(i) {
	case idSetRoll:
		next, outcome := SetBet(state, values[fieldRollAmount])
		switch outcome.Status {
		case SetParseFailure:
			return utils.QuietMessage(setParseFailureMessage(next), actionRow())
		case SetOverBank:
			return utils.QuietMessage(setOverBankMessage(next), actionRow())
		}
		return utils.QuietMessage(setSuccessMessage(outcome.Bet, next), actionRow())

	case idSubmitRecall:
		next, outcome := Recall(state, h.salt, utils.UserID(i), values[fieldClaim], values[fieldProof])
		if !outcome.Accepted {
			return utils.QuietMessage(recallFailureMessage(outcome, next), actionRow())
		}
		return utils.QuietMessage(recallSuccessMessage(outcome, next), actionRow())

	default:
		return h.Invoke(i)
	}
}

func actionRow() discordgo.MessageComponent {
	return utils.ActionRow(
		utils.Button(idRoll, "roll"),
		utils.Button(idSetRoll, "set roll"),
		utils.Button(idFree, "free"),
		utils.Button(idBrag, "brag"),
		utils.Button(idRecall, "recall"),
	)
}
