// Package mongo connects formkit to MongoDB for remote rule checks.
//
// Connect builds a client from Config and pings the primary with retries.
// Counter adapts a *mongo.Database to remote.DocumentCounter so the
// DocumentExists rule routine can look values up in a collection:
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil { ... }
//	counter := mongo.NewCounter(client.Database(cfg.Database))
//	reg.RegisterAsync("uniqueMongo", remote.DocumentExists(counter))
package mongo
