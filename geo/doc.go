/*
Package geo reads district boundaries and joins them to region statistics.

Boundary files are GeoJSON FeatureCollections decoded with
github.com/paulmach/orb/geojson. The district name is taken from the first
string property found in an ordered alias list (DefaultAliases or the
vocabulary's name_aliases):

	name, ok := geo.FeatureName(feature, geo.DefaultAliases)

Names are matched to stats through aggregate.NormalizeKey, so "PRAHA" in the
boundary file finds the stats of "Praha" in the survey.

Decorate produces the collection served at /map with styling and tooltip
properties merged into each feature.
*/
package geo
