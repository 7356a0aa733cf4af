package worker

import (
	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/message"
)

var intentActionsByName = map[string]message.IntentAction{
	"turn_on":      message.IntentTurnOn,
	"turn_off":     message.IntentTurnOff,
	"purchase":     message.IntentPurchase,
	"cancel":       message.IntentCancel,
	"what_you_see": message.IntentWhatYouSee,
	"cooking_task": message.IntentCookingTask,
	"confirm":      message.IntentConfirm,
	"next":         message.IntentNext,
	"repeat":       message.IntentRepeat,
}

var cookingMenusByName = map[string]message.CookingMenu{
	"carrot_salad": message.MenuCarrotSalad,
	"potato_salad": message.MenuPotatoSalad,
}

// intentContentFromInference decodes a capability.Inference (a string
// intent name plus a loose string-keyed slot bag) into the closed
// message.IntentContent the rest of the system matches on.
func intentContentFromInference(inf capability.Inference) message.IntentContent {
	action, ok := intentActionsByName[inf.Intent]
	if !ok {
		action = message.IntentNone
	}

	var slots []message.IntentSlot
	if menuName, ok := inf.Slots["menu"]; ok {
		if menu, ok := cookingMenusByName[menuName]; ok {
			slots = append(slots, message.IntentCookingMenu{Menu: menu})
		}
	}
	if place, ok := inf.Slots["place"]; ok {
		slots = append(slots, message.IntentPlace{Name: place})
	}

	return message.IntentContent{Action: action, Slots: slots}
}
