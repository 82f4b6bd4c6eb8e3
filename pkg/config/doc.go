/*
Package config loads the copylogo settings.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   HCL    | |   YAML   | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Holds the source and destination paths and the exit status policy
- Falls back to the built-in paths when a field or the whole file is missing

🔄 Flow:
1. Pick a parser by file extension
2. Decode, rejecting unknown fields
3. Apply defaults
4. Validate and clean paths

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".copylogo.hcl", false)
	if err != nil {
		return err
	}
	fmt.Println(cfg) // source -> destination

A minimal HCL file:

	source      = "${env.HOME}/Downloads/logo.png"
	destination = "/srv/site/static/logo.png"
	strict      = true
*/
package config
