// Package mongo connects to a MongoDB server with retry, for user
// directories backed by the official driver.
//
//	db, err := mongo.ConnectDatabase(ctx, cfg, "app")
//	if err != nil {
//		return err
//	}
//
//	dir := userdir.NewMongoDirectory(db)
//
// Configuration comes from MONGODB_* environment variables; see Config.
package mongo
