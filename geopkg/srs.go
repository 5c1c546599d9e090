package geopkg

// SpatialReferenceSystem is one row of gpkg_spatial_ref_sys.
type SpatialReferenceSystem struct {
	Name                   string
	ID                     int32
	Organization           string
	OrganizationCoordSysID int32
	Definition             string
	Description            string
}

// asRecord orders the fields the way insertGpkgSRS's placeholders
// expect: name, id, organization, organization_coordsys_id,
// definition, description.
func (s SpatialReferenceSystem) asRecord() []any {
	return []any{s.Name, s.ID, s.Organization, s.OrganizationCoordSysID, s.Definition, s.Description}
}
