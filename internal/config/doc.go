// Package config reads the optional HCL run file of the command line tool.
//
// A run file records the options of a load so they need not be repeated on
// every invocation:
//
//	model      = "house.simple"
//	log_level  = "debug"
//	order      = "dependency"
//	strict     = true
//
//	state_defaults = {
//	  SpaceDryBulbTemperature = 21
//	}
//
//	publish {
//	  url   = "http://localhost:3000"
//	  event = "state"
//	}
//
// Every attribute is optional. Command line flags take precedence over the
// values found here.
package config
