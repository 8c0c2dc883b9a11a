// Package config holds the rule table of tertestrial: the ordered list of
// actions read from ".testconfig.json".
//
// Each action pairs a trigger pattern with a shell command template:
//
//	{
//	  "actions": [
//	    {
//	      "trigger": { "command": "testFunction", "file": "\\.rs$" },
//	      "run": "cargo test {{ name }}",
//	      "vars": [
//	        { "name": "name", "source": "file", "filter": "^src/(\\w+)\\.rs$" }
//	      ]
//	    }
//	  ]
//	}
//
// Actions are checked in order and the first one whose trigger matches wins.
// The configuration is read once at startup and never modified afterwards.
package config
