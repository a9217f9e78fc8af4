package remote

// ServiceName is the fully qualified gRPC service exposed by the study backend.
const ServiceName = "cram.backend.v1.Backend"

// PrincipalHeader carries the calling principal on every request.
const PrincipalHeader = "x-cram-principal"

const (
	methodGetCallerProfile       = "GetCallerProfile"
	methodSaveCallerProfile      = "SaveCallerProfile"
	methodGetUserProfile         = "GetUserProfile"
	methodGetCallerRole          = "GetCallerRole"
	methodAssignRole             = "AssignRole"
	methodIsCallerAdmin          = "IsCallerAdmin"
	methodListFlashcards         = "ListFlashcards"
	methodFlashcardsByTopic      = "FlashcardsByTopic"
	methodFlashcardsByDifficulty = "FlashcardsByDifficulty"
	methodGetFlashcard           = "GetFlashcard"
	methodCreateFlashcard        = "CreateFlashcard"
	methodEditFlashcard          = "EditFlashcard"
	methodDeleteFlashcard        = "DeleteFlashcard"
	methodListNotes              = "ListNotes"
	methodNotesByTopic           = "NotesByTopic"
	methodGetNote                = "GetNote"
	methodCreateNote             = "CreateNote"
	methodDeleteNote             = "DeleteNote"
	methodListQuizzes            = "ListQuizzes"
	methodQuizzesByTopic         = "QuizzesByTopic"
	methodGetQuiz                = "GetQuiz"
	methodSaveQuiz               = "SaveQuiz"
	methodListMyAttempts         = "ListMyAttempts"
	methodSaveAttempt            = "SaveAttempt"
	methodListFiles              = "ListFiles"
	methodFilesByUser            = "FilesByUser"
	methodGetFile                = "GetFile"
	methodUploadBlob             = "UploadBlob"
	methodSaveFileReference      = "SaveFileReference"
	methodDeleteFile             = "DeleteFile"
	methodSearch                 = "Search"
)

// uploadChunkSize is the payload size of one UploadBlob stream message.
const uploadChunkSize = 32 << 10

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}
