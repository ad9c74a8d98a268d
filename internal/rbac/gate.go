package rbac

// Tier names a closed set of roles authorized for a class of actions.
// Tiers are unordered sets, not a hierarchy: overlapping capabilities are
// enumerated per tier by hand, even though Manager appears in every set.
type Tier int

const (
	// TierPublic allows every caller, authenticated or not.
	TierPublic Tier = iota
	// TierAnyRegisteredUser allows every authenticated role.
	TierAnyRegisteredUser
	// TierEducatorOrStaffOrManager allows educators and gallery staff.
	TierEducatorOrStaffOrManager
	// TierStaffOrManager allows catalog-managing staff.
	TierStaffOrManager
	// TierManagerOnly allows managers alone.
	TierManagerOnly
)

// Decision is the gate's verdict for one (role, tier) pair. When denied,
// Message carries the human-readable reason returned verbatim in the
// response body.
type Decision struct {
	Allowed bool
	Message string
}

var tierMembers = map[Tier]map[Role]struct{}{
	TierAnyRegisteredUser:        {RoleManager: {}, RoleStaff: {}, RoleVisitor: {}, RoleEducator: {}},
	TierEducatorOrStaffOrManager: {RoleEducator: {}, RoleStaff: {}, RoleManager: {}},
	TierStaffOrManager:           {RoleStaff: {}, RoleManager: {}},
	TierManagerOnly:              {RoleManager: {}},
}

var tierPhrase = map[Tier]string{
	TierAnyRegisteredUser:        "registered users",
	TierEducatorOrStaffOrManager: "education users",
	TierStaffOrManager:           "staff or managers",
	TierManagerOnly:              "managers",
}

// Authorize decides whether role may perform the described action under
// tier. It is a pure function: no I/O, deterministic given its inputs.
// The action phrase completes the denial message, e.g.
// "Only managers can delete artists".
func Authorize(role Role, tier Tier, action string) Decision {
	if tier == TierPublic {
		return Decision{Allowed: true}
	}
	if _, ok := tierMembers[tier][role]; ok {
		return Decision{Allowed: true}
	}
	return Decision{Message: "Only " + tierPhrase[tier] + " can " + action}
}
