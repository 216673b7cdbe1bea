package commands

import (
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{
	Galaxy,
	Spy,
	Farms,
	NewPlanets,
	Player,
	Export,
	Users,
}
