// Package config provides configuration parsing for ruix.
//
// The configuration is stored in ruix.yaml next to where the CLI runs. Every
// field is optional.
//
// # Configuration File Structure
//
//	title: RUIX demo
//	books: ./books.json
//	preview:
//	  host: localhost
//	  port: 3000
//	  shutdown_timeout: 5s
//	  metrics: true
//	render:
//	  pretty: true
//	  indent: "  "
//	publish:
//	  bucket: ${RUIX_BUCKET}
//	  prefix: site/
//	  key: index.html
//	  region: ${AWS_REGION:-us-east-1}
//	log:
//	  level: debug
//	  format: json
//
// Values of books and of the publish section support environment variable
// substitution: ${VAR} or ${VAR:-default}.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Preview:", cfg.PreviewURL())
package config
