// Command emotes fetches and decodes BetterTTV and twitchemotes.com emote
// documents and prints them as a table or as JSON.
//
//	emotes bttv global
//	emotes bttv channel forsen --json
//	emotes ttv subscriber --file subscriber.json
//	emotes -c emotes.yaml config show
package main
