package cli

import "github.com/spf13/pflag"

func addDatasetFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.StringVar(target, "db", def, "Path to bird_database.json")
}

func addShapeFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.StringVar(target, "shape", def, "Shape id (e.g. Finch)")
}

func addSelectionFlags(fs *pflag.FlagSet, birds, areas *[]string) {
	fs.StringArrayVar(birds, "birds", nil, "Bird common name, case-insensitive (repeat for several birds)")
	fs.StringSliceVar(areas, "areas", nil, "Override the areas derived from the birds (e.g. Eye,Beak,Back,Belly)")
}

func addStyleFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.StringVar(target, "style", def, "Optional YAML style file")
}

func addCatalogFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.StringVar(target, "catalog", def, "Path to the SQLite asset catalog")
}

func addAssetsDirFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.StringVar(target, "assets-dir", def, "Directory holding generated <asset_name>.png files")
}
