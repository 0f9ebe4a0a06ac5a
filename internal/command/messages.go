package command

// StartMessage introduces the bot.
const StartMessage = `Let *Dice Goblin* roll for you!

Dice Goblin will roll any-sided dice and perform simple arithmetic to reach a total value, appropriate for many tabletop and RPG games. See /help for details on the commands and syntax available.`

// HelpMessage lists commands and the roll expression syntax.
const HelpMessage = "*COMMANDS*\n" +
	"\n" +
	"/start\\\n" +
	"_See introductory information about this bot_\n" +
	"\n" +
	"/help\\\n" +
	"_See this help output_\n" +
	"\n" +
	"/roll `[expression]`\\\n" +
	"_Rolls and calculates a total (see expression syntax below)_\n" +
	"\n" +
	"/r `[expression]`\\\n" +
	"_Alias for /roll_\n" +
	"\n" +
	"/`[expression]`\\\n" +
	"_Alias for /roll_\n" +
	"\n" +
	SyntaxMessage

// SyntaxMessage documents roll expressions.
const SyntaxMessage = "*ROLL EXPRESSION SYNTAX*\n" +
	"\n" +
	"Dice rolls are described in the standard `NdS` format, where `N` is the number of rolls and `S` is the number of sides. Each roll is summed together to calculate the overall value.\n" +
	"\n" +
	"*Examples:*\\\n" +
	"`3d10` - Roll a ten-sided die three times\\\n" +
	"`d6` - Roll a single six-sided die (N defaults to 1 if omitted)\\\n" +
	"`D2` - Flip a coin (the `d` is case-insensitive)\n" +
	"\n" +
	"Rolls support basic arithmetic using the operators (+, -, \\*, /) as well as parentheses. Division always rounds towards zero, and division by zero always equals zero.\n" +
	"\n" +
	"*Examples:*\\\n" +
	"`3d10 + 2` - Roll three ten-sided dice and add two to the result\\\n" +
	"`(d6 - 1) * 2` - Roll a six-sided die, subtract one, and double the result\\\n" +
	"`3 / 2` - Equals 1 (1.5 rounded towards zero)\\\n" +
	"`1 / 0` - Division by zero always equals zero\n" +
	"\n" +
	"More than 20 dice with at most 20 sides are shown as `face:count` pairs, and more than 20 larger dice only show their sum."

// UnknownMessage answers messages with nothing to roll.
const UnknownMessage = "Unknown command. Use /help to see available commands"

// ParseFailedMessage answers rolls that are not valid expressions.
const ParseFailedMessage = "I don't understand this roll. Use /help to see the expression syntax"

// TooLargeMessage answers rolls over the configured limits.
const TooLargeMessage = "That's too many dice for one roll. Try something smaller"

// FailedMessage answers rolls that could not be completed.
const FailedMessage = "Something went wrong rolling the dice. Please try again"
