/*
Package config loads container and cache definitions from YAML.

A definition file declares the key type catalog once, so programs and the
mkd command line tool can share the same layout:

	cache:
	  default: stock_code
	  must: [stock_code]
	  key_connector: "__"
	  types:
	    - stock_code
	    - stock_name
	    - name: code_time
	      fields: [stock_code, trade_time]

Load the file, then build the runtime objects from it:

	f, err := config.Load("stocks.yaml")
	if err != nil {
	    ...
	}
	rc, err := config.NewCache(*f.Cache)
*/
package config
