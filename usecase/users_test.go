package usecase

import (
	"context"
	"errors"
	"testing"

	"edushare/model"
	"edushare/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupUsersTest(t *testing.T) (*UserService, *repository.UserRepo, func()) {
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	db := client.Database("edushare_test")
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	userRepo := repository.GetUserRepo(client)
	service := &UserService{UserRepo: userRepo}

	cleanup := func() {
		if err := db.Collection("users").Drop(context.Background()); err != nil {
			t.Errorf("Failed to clean up users collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return service, userRepo, cleanup
}

func uniqueName(prefix string) string {
	return prefix + uuid.New().String()[:8]
}

func TestRegisterActivationByRole(t *testing.T) {
	service, _, cleanup := setupUsersTest(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("StudentIsActiveImmediately", func(t *testing.T) {
		user, err := service.Register(ctx, uniqueName("stud"),
			uniqueName("stud")+"@school.edu", "Pass123!word", model.UserTypeStudent)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if !user.IsActive {
			t.Error("student account inactive, want active")
		}
	})

	t.Run("TeacherAwaitsApproval", func(t *testing.T) {
		user, err := service.Register(ctx, uniqueName("prof"),
			uniqueName("prof")+"@school.edu", "Pass123!word", model.UserTypeTeacher)
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.IsActive {
			t.Error("teacher account active, want pending approval")
		}
	})
}

func TestAuthenticateGatesPendingAccounts(t *testing.T) {
	service, userRepo, cleanup := setupUsersTest(t)
	defer cleanup()
	ctx := context.Background()

	studentName := uniqueName("stud")
	if _, err := service.Register(ctx, studentName,
		studentName+"@school.edu", "Pass123!word", model.UserTypeStudent); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	teacherName := uniqueName("prof")
	teacher, err := service.Register(ctx, teacherName,
		teacherName+"@school.edu", "Pass123!word", model.UserTypeTeacher)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("ActiveStudentLogsIn", func(t *testing.T) {
		user, err := service.Authenticate(ctx, studentName, "Pass123!word", "test device")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Username != studentName {
			t.Errorf("authenticated as %s, want %s", user.Username, studentName)
		}
	})

	t.Run("PendingTeacherIsRejected", func(t *testing.T) {
		_, err := service.Authenticate(ctx, teacherName, "Pass123!word", "test device")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("WrongPasswordStillRejectedFirst", func(t *testing.T) {
		_, err := service.Authenticate(ctx, teacherName, "not-the-password", "test device")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("ApprovedTeacherLogsIn", func(t *testing.T) {
		if err := userRepo.SetActive(ctx, teacher.UserID, true); err != nil {
			t.Fatalf("SetActive failed: %v", err)
		}
		user, err := service.Authenticate(ctx, teacherName, "Pass123!word", "test device")
		if err != nil {
			t.Fatalf("Authenticate failed after approval: %v", err)
		}
		if !user.IsTeacher() {
			t.Errorf("user type = %s, want teacher", user.UserType)
		}
	})
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	service, _, cleanup := setupUsersTest(t)
	defer cleanup()
	ctx := context.Background()

	name := uniqueName("dup")
	if _, err := service.Register(ctx, name, name+"@school.edu", "Pass123!word", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := service.Register(ctx, name, uniqueName("x")+"@school.edu", "Pass123!word", ""); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate username err = %v, want ErrConflict", err)
	}
	if _, err := service.Register(ctx, uniqueName("y"), name+"@school.edu", "Pass123!word", ""); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email err = %v, want ErrConflict", err)
	}
}
