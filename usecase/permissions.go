package usecase

import "edushare/model"

// CanManageNote decides whether a user may edit or delete a note: the
// uploader always can, and teachers can moderate any note.
func CanManageNote(user *model.User, note *model.Note) bool {
	if user == nil || note == nil {
		return false
	}
	return note.UploaderID == user.UserID || user.IsTeacher()
}

// CanViewNote decides read access: public notes are visible to everyone;
// private ones only to whoever can manage them.
func CanViewNote(user *model.User, note *model.Note) bool {
	if note == nil {
		return false
	}
	if note.IsPublic {
		return true
	}
	return CanManageNote(user, note)
}
