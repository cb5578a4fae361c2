// Package prompt provides simple interactive prompts.
//
// Prompts render on stderr so stdout stays clean for data. Check
// [Interactive] before prompting; without a terminal there is nobody to ask.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input
//   - [Select]: Single selection from a list
package prompt
