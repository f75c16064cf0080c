package usecase

import (
	"testing"

	"edushare/model"
)

func TestCanManageNote(t *testing.T) {
	uploader := &model.User{UserID: "uploader-1", UserType: model.UserTypeStudent}
	teacher := &model.User{UserID: "teacher-1", UserType: model.UserTypeTeacher}
	stranger := &model.User{UserID: "stranger-1", UserType: model.UserTypeStudent}
	note := &model.Note{ID: "note-1", UploaderID: "uploader-1", IsPublic: true}

	tests := []struct {
		name string
		user *model.User
		note *model.Note
		want bool
	}{
		{"UploaderCanManage", uploader, note, true},
		{"TeacherCanManage", teacher, note, true},
		{"StrangerCannotManage", stranger, note, false},
		{"NilUser", nil, note, false},
		{"NilNote", uploader, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManageNote(tt.user, tt.note); got != tt.want {
				t.Errorf("CanManageNote() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanViewNote(t *testing.T) {
	uploader := &model.User{UserID: "uploader-1", UserType: model.UserTypeStudent}
	stranger := &model.User{UserID: "stranger-1", UserType: model.UserTypeStudent}
	teacher := &model.User{UserID: "teacher-1", UserType: model.UserTypeTeacher}
	private := &model.Note{ID: "note-1", UploaderID: "uploader-1", IsPublic: false}
	public := &model.Note{ID: "note-2", UploaderID: "uploader-1", IsPublic: true}

	tests := []struct {
		name string
		user *model.User
		note *model.Note
		want bool
	}{
		{"AnonymousSeesPublic", nil, public, true},
		{"AnonymousCannotSeePrivate", nil, private, false},
		{"StrangerCannotSeePrivate", stranger, private, false},
		{"UploaderSeesOwnPrivate", uploader, private, true},
		{"TeacherSeesPrivate", teacher, private, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanViewNote(tt.user, tt.note); got != tt.want {
				t.Errorf("CanViewNote() = %v, want %v", got, tt.want)
			}
		})
	}
}
