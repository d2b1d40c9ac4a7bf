// Package faqdex embeds the faqdex FAQ backend as a Go library backed by
// Redis with the JSON and search modules.
//
//	client, _ := faqdex.New(ctx, faqdex.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	_, _ = client.Seed(ctx, false)
//	hits, _ := client.FAQ().Search(ctx, "wlan passwort", 10)
//	prefs, _ := client.Preferences().Get(ctx, "user-42")
package faqdex
