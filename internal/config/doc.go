// Package config provides configuration parsing for htmlr.
//
// The configuration is stored in htmlr.json. Missing fields take their
// defaults; saving is atomic.
//
// # Configuration File Structure
//
//	{
//	  "name": "htmlr",
//	  "logLevel": "info",
//	  "server": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "readTimeout": "10s",
//	    "writeTimeout": "10s",
//	    "shutdownTimeout": "5s"
//	  },
//	  "metrics": { "enabled": true, "namespace": "htmlr", "path": "/metrics" },
//	  "tracing": { "enabled": true },
//	  "content": { "driver": "sqlite", "dsn": "file:htmlr.db", "seed": true },
//	  "publish": { "bucket": "my-site", "prefix": "pages/", "region": "eu-west-1" },
//	  "live": { "enabled": true, "interval": "1s" }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
