// Package dataset reads the dashboard files chartgeom renders.
//
// A dashboard file holds one or more named datasets, each a list of
// {label, value} records with an optional chart kind and title:
//
//	{
//	  "datasets": [
//	    {"name": "orders-by-vendor", "kind": "bar", "title": "Orders by vendor",
//	     "data": [{"label": "Green Acres", "value": 42}, {"label": "Hillside", "value": 17}]}
//	  ]
//	}
//
// The same structure is accepted as TOML ([[datasets]] tables) and YAML.
// A JSON file whose top level is a plain array is read as a single dataset
// named "default".
//
// Records are converted with [chart.Coerce], so entries that are missing, not
// objects, or carry a non-numeric value are dropped here exactly as the
// geometry engine would drop them. Value-level checks (NaN, negative, missing
// label) stay with the engine.
//
// [chart.Coerce]: github.com/matzehuels/chartgeom/pkg/chart.Coerce
package dataset
