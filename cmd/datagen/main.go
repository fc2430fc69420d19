package main

import (
	"flag"
	log "log/slog"
	"os"
	"path/filepath"
	"time"

	"Sentiscope/internal/datagen"
)

func main() {
	log.SetDefault(log.New(log.NewJSONHandler(os.Stdout, nil)))

	opts := datagen.DefaultOptions()
	outDir := flag.String("out", "data", "output directory")
	end := flag.String("end", "", "latest post date (YYYY-MM-DD), defaults to today")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flag.IntVar(&opts.Posts, "posts", opts.Posts, "number of posts")
	flag.Parse()

	if *end != "" {
		d, err := time.Parse(time.DateOnly, *end)
		if err != nil {
			log.Error("invalid end date", "end", *end, "err", err)
			os.Exit(2)
		}
		opts.End = d
	}
	if opts.Posts <= 0 {
		log.Error("posts must be positive", "posts", opts.Posts)
		os.Exit(2)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("create output dir error", "dir", *outDir, "err", err)
		os.Exit(1)
	}

	posts, comments := datagen.Generate(opts)

	if err := writeFile(filepath.Join(*outDir, datagen.PostsFile), func(f *os.File) error {
		return datagen.WritePosts(f, posts)
	}); err != nil {
		log.Error("write posts error", "err", err)
		os.Exit(1)
	}
	if err := writeFile(filepath.Join(*outDir, datagen.CommentsFile), func(f *os.File) error {
		return datagen.WriteComments(f, comments)
	}); err != nil {
		log.Error("write comments error", "err", err)
		os.Exit(1)
	}

	log.Info("mock data generated", "dir", *outDir, "seed", opts.Seed, "posts", len(posts), "comments", len(comments))
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
