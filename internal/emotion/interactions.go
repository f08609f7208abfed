package emotion

import (
	"context"
	"fmt"
)

// Interaction is a direct user action with a fixed affect impact.
type Interaction string

const (
	// InteractionComfort soothes: more pleasure and security, less tension.
	InteractionComfort Interaction = "comfort"
	// InteractionOvertime drags the character into overtime work.
	InteractionOvertime Interaction = "overtime"
	// InteractionFeed offers food.
	InteractionFeed Interaction = "feed"
	// InteractionColdWater dampens the mood.
	InteractionColdWater Interaction = "water"
)

// interactionImpacts maps each interaction to its (pleasure, arousal,
// dominance) delta.
var interactionImpacts = map[Interaction][3]int{
	InteractionComfort:   {25, -5, 10},
	InteractionOvertime:  {-30, 15, -20},
	InteractionFeed:      {20, 3, 8},
	InteractionColdWater: {-15, 8, -12},
}

// ImpactFor returns the PAD delta for an interaction.
func ImpactFor(kind Interaction) (pleasure, arousal, dominance int, ok bool) {
	impact, ok := interactionImpacts[kind]
	return impact[0], impact[1], impact[2], ok
}

// Interactions returns the known interaction kinds.
func Interactions() []Interaction {
	kinds := make([]Interaction, 0, len(interactionImpacts))
	for kind := range interactionImpacts {
		kinds = append(kinds, kind)
	}
	return kinds
}

// UpdateFromInteraction applies a named interaction's fixed impact through
// the single-event path. Unknown interactions are rejected.
func (u *Updater) UpdateFromInteraction(ctx context.Context, characterID string, kind Interaction) error {
	pleasure, arousal, dominance, ok := ImpactFor(kind)
	if !ok {
		return fmt.Errorf("emotion: unknown interaction %q", kind)
	}
	return u.UpdateFromEvent(ctx, characterID, pleasure, arousal, dominance)
}
